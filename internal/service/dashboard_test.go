package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/janus-care/janus/internal/domain"
	"github.com/janus-care/janus/internal/store"
	"github.com/janus-care/janus/pkg/idx"
)

func seedDiary(t *testing.T, st store.Store, patientID string, emotions []string, intensities []int) {
	t.Helper()
	for i, emotion := range emotions {
		err := st.DiaryEntries().CreateDiaryEntry(context.Background(), domain.DiaryEntry{
			ID:        idx.New().String(),
			PatientID: patientID,
			EntryDate: time.Date(2026, 8, 1+i, 0, 0, 0, 0, time.UTC),
			Emotion:   emotion,
			Intensity: intensities[i],
			CreatedAt: time.Now().UTC(),
		})
		require.NoError(t, err)
	}
}

func TestDashboardPatients(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &DashboardService{Store: st}

	therapist := seedUser(t, st, "tera@janus.test", domain.RoleTherapist, "")
	other := seedUser(t, st, "ajena@janus.test", domain.RoleTherapist, "")
	a := seedUser(t, st, "a@janus.test", domain.RolePatient, therapist.ID)
	b := seedUser(t, st, "b@janus.test", domain.RolePatient, therapist.ID)
	seedUser(t, st, "c@janus.test", domain.RolePatient, other.ID)

	patients, err := svc.Patients(ctx, therapist.ID)
	require.NoError(t, err)
	require.Len(t, patients, 2)
	require.Equal(t, a.ID, patients[0].ID)
	require.Equal(t, b.ID, patients[1].ID)
}

func TestDashboardSummary(t *testing.T) {
	ctx := context.Background()

	t.Run("diary statistics", func(t *testing.T) {
		st := newTestStore(t)
		svc := &DashboardService{Store: st}

		therapist := seedUser(t, st, "tera@janus.test", domain.RoleTherapist, "")
		patient := seedUser(t, st, "p@janus.test", domain.RolePatient, therapist.ID)

		seedDiary(t, st, patient.ID,
			[]string{"alegría", "alegría", "tristeza", "calma"},
			[]int{4, 6, 8, 6},
		)

		sum, err := svc.Summary(ctx, therapist.ID, patient.ID, time.Time{}, time.Time{})
		require.NoError(t, err)

		require.Equal(t, 4, sum.Diary.EntryCount)
		require.InDelta(t, 6.0, sum.Diary.MeanIntensity, 1e-9)
		// Population stddev of {4, 6, 8, 6} is sqrt(2).
		require.InDelta(t, 1.4142135623, sum.Diary.StdDevIntensity, 1e-9)
		require.Equal(t, map[string]int{"alegría": 2, "tristeza": 1, "calma": 1}, sum.Diary.EmotionCounts)
		require.Equal(t, "alegría", sum.Diary.DominantEmotion)
		// H({1/2, 1/4, 1/4}) = 1.5 bits.
		require.InDelta(t, 1.5, sum.Diary.EmotionEntropy, 1e-9)
	})

	t.Run("uniform four-emotion distribution yields two bits", func(t *testing.T) {
		st := newTestStore(t)
		svc := &DashboardService{Store: st}

		therapist := seedUser(t, st, "tera@janus.test", domain.RoleTherapist, "")
		patient := seedUser(t, st, "p@janus.test", domain.RolePatient, therapist.ID)

		seedDiary(t, st, patient.ID,
			[]string{"alegría", "tristeza", "miedo", "calma"},
			[]int{5, 5, 5, 5},
		)

		sum, err := svc.Summary(ctx, therapist.ID, patient.ID, time.Time{}, time.Time{})
		require.NoError(t, err)
		require.InDelta(t, 2.0, sum.Diary.EmotionEntropy, 1e-9)
		require.Zero(t, sum.Diary.StdDevIntensity)
	})

	t.Run("single emotion yields zero bits", func(t *testing.T) {
		st := newTestStore(t)
		svc := &DashboardService{Store: st}

		therapist := seedUser(t, st, "tera@janus.test", domain.RoleTherapist, "")
		patient := seedUser(t, st, "p@janus.test", domain.RolePatient, therapist.ID)

		seedDiary(t, st, patient.ID, []string{"calma", "calma", "calma"}, []int{3, 3, 3})

		sum, err := svc.Summary(ctx, therapist.ID, patient.ID, time.Time{}, time.Time{})
		require.NoError(t, err)
		require.Zero(t, sum.Diary.EmotionEntropy)
	})

	t.Run("task completion and game aggregates", func(t *testing.T) {
		st := newTestStore(t)
		svc := &DashboardService{Store: st}
		records := &RecordsService{Store: st}

		therapist := seedUser(t, st, "tera@janus.test", domain.RoleTherapist, "")
		patient := seedUser(t, st, "p@janus.test", domain.RolePatient, therapist.ID)

		var taskIDs []string
		for _, title := range []string{"t1", "t2", "t3", "t4"} {
			task, err := records.AddTask(ctx, patient.ID, patient.ID, domain.Task{Title: title})
			require.NoError(t, err)
			taskIDs = append(taskIDs, task.ID)
		}
		require.NoError(t, records.SetTaskStatus(ctx, patient.ID, patient.ID, taskIDs[0], domain.TaskDone))
		require.NoError(t, records.SetTaskStatus(ctx, patient.ID, patient.ID, taskIDs[1], domain.TaskDone))
		require.NoError(t, records.SetTaskStatus(ctx, patient.ID, patient.ID, taskIDs[2], domain.TaskDone))

		for _, play := range []struct {
			game  string
			score float64
		}{
			{"planetas", 10}, {"planetas", 30}, {"memoria", 50},
		} {
			_, err := records.AddGameResult(ctx, patient.ID, patient.ID, domain.GameResult{
				Game:  play.game,
				Score: play.score,
			})
			require.NoError(t, err)
		}

		sum, err := svc.Summary(ctx, therapist.ID, patient.ID, time.Time{}, time.Time{})
		require.NoError(t, err)

		require.Equal(t, 4, sum.Tasks.Total)
		require.Equal(t, 3, sum.Tasks.Done)
		require.Equal(t, 1, sum.Tasks.Pending)
		require.InDelta(t, 0.75, sum.Tasks.CompletionRate, 1e-9)

		require.Len(t, sum.Games, 2)
		require.Equal(t, "planetas", sum.Games[0].Game)
		require.Equal(t, 2, sum.Games[0].Plays)
		require.InDelta(t, 20.0, sum.Games[0].MeanScore, 1e-9)
		require.InDelta(t, 30.0, sum.Games[0].BestScore, 1e-9)
		require.Equal(t, "memoria", sum.Games[1].Game)
	})

	t.Run("empty records produce a zeroed summary", func(t *testing.T) {
		st := newTestStore(t)
		svc := &DashboardService{Store: st}

		therapist := seedUser(t, st, "tera@janus.test", domain.RoleTherapist, "")
		patient := seedUser(t, st, "p@janus.test", domain.RolePatient, therapist.ID)

		sum, err := svc.Summary(ctx, therapist.ID, patient.ID, time.Time{}, time.Time{})
		require.NoError(t, err)
		require.Zero(t, sum.Diary.EntryCount)
		require.Zero(t, sum.Tasks.CompletionRate)
		require.Empty(t, sum.Games)
	})

	t.Run("another therapist's patient is off limits", func(t *testing.T) {
		st := newTestStore(t)
		svc := &DashboardService{Store: st}

		mine := seedUser(t, st, "tera@janus.test", domain.RoleTherapist, "")
		other := seedUser(t, st, "ajena@janus.test", domain.RoleTherapist, "")
		patient := seedUser(t, st, "p@janus.test", domain.RolePatient, mine.ID)

		_, err := svc.Summary(ctx, other.ID, patient.ID, time.Time{}, time.Time{})
		require.ErrorIs(t, err, ErrForbidden)
	})
}
