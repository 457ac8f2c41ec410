package server

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/abhisek/vocabstreak/internal/achievements"
	"github.com/abhisek/vocabstreak/internal/progress"
)

type progressView struct {
	CurrentStreak             int          `json:"currentStreak"`
	LongestStreak             int          `json:"longestStreak"`
	LastActiveDate            progress.Day `json:"lastActiveDate"`
	TotalWordsLearned         int          `json:"totalWordsLearned"`
	TotalExercisesCompleted   int          `json:"totalExercisesCompleted"`
	TotalTimeSpentMinutes     int          `json:"totalTimeSpentMinutes"`
	GamesPlayed               int          `json:"gamesPlayed"`
	PerfectGames              int          `json:"perfectGames"`
	ConsecutiveCorrectAnswers int          `json:"consecutiveCorrectAnswers"`
	TodayWordsLearned         int          `json:"todayWordsLearned"`
	DailyGoal                 int          `json:"dailyGoal"`
	GoalReached               bool         `json:"goalReached"`
	UnlockedCount             int          `json:"unlockedCount"`
	AchievementCount          int          `json:"achievementCount"`
}

type achievementView struct {
	ID          string                `json:"id"`
	Icon        string                `json:"icon"`
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Category    achievements.Category `json:"category"`
	Requirement int                   `json:"requirement"`
	Unlocked    bool                  `json:"unlocked"`
}

type eventResponse struct {
	Streak   string            `json:"streak,omitempty"`
	Unlocked []achievementView `json:"unlocked"`
	Clamped  bool              `json:"clamped,omitempty"`
	Progress progressView      `json:"progress"`
}

type countRequest struct {
	Count *int `json:"count" validate:"required,gte=0"`
}

type answerRequest struct {
	Correct *bool `json:"correct" validate:"required"`
}

type timeRequest struct {
	Minutes *int `json:"minutes" validate:"required,gte=0"`
}

type gameRequest struct {
	Perfect bool `json:"perfect"`
}

type goalRequest struct {
	Goal *int `json:"goal" validate:"required,gte=0"`
}

type wordIndexRequest struct {
	Index *int `json:"index" validate:"required,gte=0"`
}

type wordIndexResponse struct {
	Context string `json:"context"`
	Index   int    `json:"index"`
}

func (s *Server) summary() progressView {
	st := s.engine.Snapshot()
	today := s.engine.Today()
	return progressView{
		CurrentStreak:             st.CurrentStreak,
		LongestStreak:             st.LongestStreak,
		LastActiveDate:            st.LastActiveDate,
		TotalWordsLearned:         st.TotalWordsLearned,
		TotalExercisesCompleted:   st.TotalExercisesCompleted,
		TotalTimeSpentMinutes:     st.TotalTimeSpent(),
		GamesPlayed:               st.GamesPlayed,
		PerfectGames:              st.PerfectGames,
		ConsecutiveCorrectAnswers: st.ConsecutiveCorrectAnswers,
		TodayWordsLearned:         st.TodayWords(today),
		DailyGoal:                 st.DailyGoal,
		GoalReached:               st.GoalReached(today),
		UnlockedCount:             len(st.UnlockedAchievementIDs),
		AchievementCount:          s.engine.Catalog().Len(),
	}
}

func (s *Server) view(d achievements.Definition, unlocked bool) achievementView {
	return achievementView{
		ID:          d.ID,
		Icon:        d.Icon,
		Title:       s.localizer.Title(d.ID),
		Description: s.localizer.Description(d.ID),
		Category:    d.Category,
		Requirement: d.Requirement,
		Unlocked:    unlocked,
	}
}

func (s *Server) respondTransition(w http.ResponseWriter, ts ...progress.Transition) {
	resp := eventResponse{Unlocked: []achievementView{}}
	for _, t := range ts {
		if t.Streak != progress.StreakNotEvaluated {
			resp.Streak = t.Streak.String()
		}
		for _, d := range t.Unlocked {
			resp.Unlocked = append(resp.Unlocked, s.view(d, true))
		}
		resp.Clamped = resp.Clamped || t.Clamped
	}
	resp.Progress = s.summary()
	respondJSON(w, http.StatusOK, resp)
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) getProgress(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, s.summary())
}

func (s *Server) getHistory(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, s.engine.DailyBuckets())
}

func (s *Server) getAchievements(w http.ResponseWriter, _ *http.Request) {
	st := s.engine.Snapshot()
	all := s.engine.Catalog().All()
	out := make([]achievementView, 0, len(all))
	for _, d := range all {
		out = append(out, s.view(d, st.IsUnlocked(d.ID)))
	}
	respondJSON(w, http.StatusOK, out)
}

func (s *Server) getLatestNotification(w http.ResponseWriter, _ *http.Request) {
	id, ok := s.engine.PeekUnlocked()
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	d, ok := s.engine.Catalog().Lookup(id)
	if !ok {
		respondError(w, http.StatusNotFound, "UNKNOWN_ACHIEVEMENT", "mailbox holds an unknown achievement: "+id)
		return
	}
	respondJSON(w, http.StatusOK, s.view(d, true))
}

// clearLatestNotification acknowledges the notification named by ?id=. A
// different id in the mailbox means a newer unlock arrived after the
// client's GET; it is kept and reported with 409.
func (s *Server) clearLatestNotification(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		respondError(w, http.StatusBadRequest, "MISSING_ID", "query parameter id is required")
		return
	}
	if cleared, current := s.engine.ClearUnlockedIf(id); !cleared && current != "" {
		respondError(w, http.StatusConflict, "NOTIFICATION_CHANGED",
			fmt.Sprintf("mailbox now holds %q, not %q", current, id))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) postWords(w http.ResponseWriter, r *http.Request) {
	var req countRequest
	if !decode(w, r, &req, false) {
		return
	}
	s.respondTransition(w, s.engine.RecordWordsLearned(*req.Count))
}

func (s *Server) postReviews(w http.ResponseWriter, r *http.Request) {
	var req countRequest
	if !decode(w, r, &req, false) {
		return
	}
	s.respondTransition(w, s.engine.RecordWordsReviewed(*req.Count))
}

func (s *Server) postExercise(w http.ResponseWriter, _ *http.Request) {
	s.respondTransition(w, s.engine.RecordExerciseCompleted())
}

func (s *Server) postAnswer(w http.ResponseWriter, r *http.Request) {
	var req answerRequest
	if !decode(w, r, &req, false) {
		return
	}
	if *req.Correct {
		s.respondTransition(w, s.engine.RecordCorrectAnswer())
		return
	}
	s.respondTransition(w, s.engine.RecordIncorrectAnswer())
}

func (s *Server) postTime(w http.ResponseWriter, r *http.Request) {
	var req timeRequest
	if !decode(w, r, &req, false) {
		return
	}
	s.respondTransition(w, s.engine.AddTimeSpent(*req.Minutes))
}

func (s *Server) postGame(w http.ResponseWriter, r *http.Request) {
	var req gameRequest
	if !decode(w, r, &req, true) {
		return
	}
	played := s.engine.RecordGamePlayed()
	if !req.Perfect {
		s.respondTransition(w, played)
		return
	}
	s.respondTransition(w, played, s.engine.RecordPerfectGame())
}

func (s *Server) postStreak(w http.ResponseWriter, _ *http.Request) {
	s.respondTransition(w, s.engine.UpdateStreak())
}

func (s *Server) putGoal(w http.ResponseWriter, r *http.Request) {
	var req goalRequest
	if !decode(w, r, &req, false) {
		return
	}
	s.respondTransition(w, s.engine.SetDailyGoal(*req.Goal))
}

func (s *Server) getWordIndex(w http.ResponseWriter, r *http.Request) {
	ctx := chi.URLParam(r, "context")
	i, ok := s.engine.LastWordIndex(ctx)
	if !ok {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "no word index for "+ctx)
		return
	}
	respondJSON(w, http.StatusOK, wordIndexResponse{Context: ctx, Index: i})
}

func (s *Server) putWordIndex(w http.ResponseWriter, r *http.Request) {
	ctx := chi.URLParam(r, "context")
	var req wordIndexRequest
	if !decode(w, r, &req, false) {
		return
	}
	s.engine.SetLastWordIndex(ctx, *req.Index)
	respondJSON(w, http.StatusOK, wordIndexResponse{Context: ctx, Index: *req.Index})
}
