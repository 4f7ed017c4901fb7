package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/janus-care/janus/internal/domain"
	"github.com/janus-care/janus/internal/store"
)

// DashboardService aggregates a patient's clinical records into the
// descriptive statistics the therapist dashboard renders. All reductions
// happen server-side; charting stays in the SPA.
type DashboardService struct {
	Store store.Store
}

// DiarySummary describes the emotion diary over the requested window.
type DiarySummary struct {
	EntryCount      int
	MeanIntensity   float64
	StdDevIntensity float64
	EmotionCounts   map[string]int
	EmotionEntropy  float64 // Shannon entropy of the distribution, in bits
	DominantEmotion string
	FirstEntry      time.Time
	LastEntry       time.Time
}

// TaskSummary describes the planner state.
type TaskSummary struct {
	Total          int
	Pending        int
	Done           int
	CompletionRate float64 // done / total, 0 when there are no tasks
}

// GameSummary describes one game's results.
type GameSummary struct {
	Game      string
	Plays     int
	MeanScore float64
	BestScore float64
	LastPlay  time.Time
}

// PatientSummary is the full dashboard payload for one patient.
type PatientSummary struct {
	Patient domain.User
	Diary   DiarySummary
	Tasks   TaskSummary
	Games   []GameSummary
}

// Patients lists the therapist's assigned patients.
func (s *DashboardService) Patients(ctx context.Context, therapistID string) ([]domain.User, error) {
	patients, err := s.Store.Users().ListPatientsByTherapist(ctx, therapistID)
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}
	return patients, nil
}

// Summary aggregates one patient's records for their assigned therapist.
// A therapist asking about somebody else's patient gets ErrForbidden.
func (s *DashboardService) Summary(ctx context.Context, therapistID, patientID string, from, to time.Time) (PatientSummary, error) {
	patient, err := s.Store.Users().GetUserByID(ctx, patientID)
	if err != nil {
		return PatientSummary{}, mapUserLookup(err)
	}
	if patient.Role != domain.RolePatient {
		return PatientSummary{}, ErrNotFound
	}
	if patient.TherapistID != therapistID {
		return PatientSummary{}, ErrForbidden
	}

	entries, err := s.Store.DiaryEntries().ListDiaryEntries(ctx, patientID, from, to)
	if err != nil {
		return PatientSummary{}, fmt.Errorf("list diary entries: %w", err)
	}
	tasks, err := s.Store.Tasks().ListTasks(ctx, patientID)
	if err != nil {
		return PatientSummary{}, fmt.Errorf("list tasks: %w", err)
	}
	results, err := s.Store.GameResults().ListGameResults(ctx, patientID, "")
	if err != nil {
		return PatientSummary{}, fmt.Errorf("list game results: %w", err)
	}

	return PatientSummary{
		Patient: patient,
		Diary:   summarizeDiary(entries),
		Tasks:   summarizeTasks(tasks),
		Games:   summarizeGames(results),
	}, nil
}

func summarizeDiary(entries []domain.DiaryEntry) DiarySummary {
	summary := DiarySummary{
		EntryCount:    len(entries),
		EmotionCounts: map[string]int{},
	}
	if len(entries) == 0 {
		return summary
	}

	var sum float64
	for i, e := range entries {
		sum += float64(e.Intensity)
		summary.EmotionCounts[e.Emotion]++
		if i == 0 || e.EntryDate.Before(summary.FirstEntry) {
			summary.FirstEntry = e.EntryDate
		}
		if e.EntryDate.After(summary.LastEntry) {
			summary.LastEntry = e.EntryDate
		}
	}
	mean := sum / float64(len(entries))
	summary.MeanIntensity = mean

	// Population standard deviation: the window is the whole population
	// the dashboard describes, not a sample of it.
	var sq float64
	for _, e := range entries {
		d := float64(e.Intensity) - mean
		sq += d * d
	}
	summary.StdDevIntensity = math.Sqrt(sq / float64(len(entries)))

	summary.EmotionEntropy = shannonEntropy(summary.EmotionCounts, len(entries))

	best := 0
	for emotion, n := range summary.EmotionCounts {
		if n > best || (n == best && emotion < summary.DominantEmotion) {
			best = n
			summary.DominantEmotion = emotion
		}
	}
	return summary
}

// shannonEntropy computes H = -sum(p * log2 p) over the emotion
// distribution. A uniform distribution over 4 emotions yields 2 bits, a
// single emotion yields 0.
func shannonEntropy(counts map[string]int, total int) float64 {
	if total == 0 {
		return 0
	}
	var h float64
	for _, n := range counts {
		if n == 0 {
			continue
		}
		p := float64(n) / float64(total)
		h -= p * math.Log2(p)
	}
	return h
}

func summarizeTasks(tasks []domain.Task) TaskSummary {
	summary := TaskSummary{Total: len(tasks)}
	for _, t := range tasks {
		switch t.Status {
		case domain.TaskDone:
			summary.Done++
		default:
			summary.Pending++
		}
	}
	if summary.Total > 0 {
		summary.CompletionRate = float64(summary.Done) / float64(summary.Total)
	}
	return summary
}

func summarizeGames(results []domain.GameResult) []GameSummary {
	byGame := map[string]*GameSummary{}
	var order []string
	sums := map[string]float64{}

	for _, r := range results {
		g, ok := byGame[r.Game]
		if !ok {
			g = &GameSummary{Game: r.Game, BestScore: r.Score}
			byGame[r.Game] = g
			order = append(order, r.Game)
		}
		g.Plays++
		sums[r.Game] += r.Score
		if r.Score > g.BestScore {
			g.BestScore = r.Score
		}
		if r.PlayedAt.After(g.LastPlay) {
			g.LastPlay = r.PlayedAt
		}
	}

	out := make([]GameSummary, 0, len(order))
	for _, game := range order {
		g := byGame[game]
		g.MeanScore = sums[game] / float64(g.Plays)
		out = append(out, *g)
	}
	return out
}
