package http

import (
	"time"

	"github.com/janus-care/janus/internal/domain"
	"github.com/janus-care/janus/internal/service"
)

// Wire-level DTOs. Field names follow the SPA's contract: personal fields
// use the Spanish keys the frontend sends (nombre, apellidos,
// fechaNacimiento), everything else is plain English.

type RegisterRequest struct {
	Nombre          string `json:"nombre"`
	Apellidos       string `json:"apellidos"`
	FechaNacimiento string `json:"fechaNacimiento"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	Role            string `json:"role"`
	InvitationID    string `json:"invitationId,omitempty"`
}

type UserSummary struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
	Email  string `json:"email"`
}

type RegisterResponse struct {
	Token string      `json:"token"`
	Role  string      `json:"role"`
	User  UserSummary `json:"user"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

type CreateInvitationRequest struct {
	InvitedEmail string `json:"invitedEmail"`
}

type InvitationView struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	TherapistID string    `json:"therapistId"`
	CreatedAt   time.Time `json:"createdAt"`
}

type CreateInvitationResponse struct {
	Msg        string         `json:"msg"`
	Invitation InvitationView `json:"invitation"`
}

type ValidateInvitationResponse struct {
	Valid     bool   `json:"valid"`
	Therapist string `json:"therapist,omitempty"`
}

type UserView struct {
	ID              string `json:"id"`
	Nombre          string `json:"nombre"`
	Apellidos       string `json:"apellidos"`
	Email           string `json:"email"`
	FechaNacimiento string `json:"fechaNacimiento"`
	Role            string `json:"role"`
	TherapistID     string `json:"therapistId,omitempty"`
}

type UpdateProfileRequest struct {
	Nombre    string `json:"nombre"`
	Apellidos string `json:"apellidos"`
}

type SendMessageRequest struct {
	RecipientID string `json:"recipientId"`
	Body        string `json:"body"`
}

type MessageView struct {
	ID          string    `json:"id"`
	SenderID    string    `json:"senderId"`
	RecipientID string    `json:"recipientId"`
	Body        string    `json:"body"`
	CreatedAt   time.Time `json:"createdAt"`
}

type AddDiaryEntryRequest struct {
	Date      string `json:"date,omitempty"` // yyyy-mm-dd, defaults to today
	Emotion   string `json:"emotion"`
	Intensity int    `json:"intensity"`
	Note      string `json:"note,omitempty"`
}

type DiaryEntryView struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	Emotion   string    `json:"emotion"`
	Intensity int       `json:"intensity"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type AddTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	DueDate     string `json:"dueDate,omitempty"` // yyyy-mm-dd
}

type TaskView struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	DueDate     string    `json:"dueDate,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

type UpdateTaskStatusRequest struct {
	Status string `json:"status"`
}

type AddRoutineRequest struct {
	Title     string `json:"title"`
	Weekday   int    `json:"weekday"`
	TimeOfDay string `json:"timeOfDay"`
}

type RoutineView struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Weekday   int    `json:"weekday"`
	TimeOfDay string `json:"timeOfDay"`
	Active    bool   `json:"active"`
}

type SetRoutineActiveRequest struct {
	Active bool `json:"active"`
}

type AddSessionNoteRequest struct {
	Body string `json:"body"`
}

type SessionNoteView struct {
	ID          string    `json:"id"`
	TherapistID string    `json:"therapistId"`
	Body        string    `json:"body"`
	CreatedAt   time.Time `json:"createdAt"`
}

type AddGameResultRequest struct {
	Game    string  `json:"game"`
	Score   float64 `json:"score"`
	Payload string  `json:"payload,omitempty"`
}

type GameResultView struct {
	ID       string    `json:"id"`
	Game     string    `json:"game"`
	Score    float64   `json:"score"`
	Payload  string    `json:"payload,omitempty"`
	PlayedAt time.Time `json:"playedAt"`
}

type DiarySummaryView struct {
	EntryCount      int            `json:"entryCount"`
	MeanIntensity   float64        `json:"meanIntensity"`
	StdDevIntensity float64        `json:"stdDevIntensity"`
	EmotionCounts   map[string]int `json:"emotionCounts"`
	EmotionEntropy  float64        `json:"emotionEntropy"`
	DominantEmotion string         `json:"dominantEmotion,omitempty"`
}

type TaskSummaryView struct {
	Total          int     `json:"total"`
	Pending        int     `json:"pending"`
	Done           int     `json:"done"`
	CompletionRate float64 `json:"completionRate"`
}

type GameSummaryView struct {
	Game      string  `json:"game"`
	Plays     int     `json:"plays"`
	MeanScore float64 `json:"meanScore"`
	BestScore float64 `json:"bestScore"`
}

type PatientSummaryResponse struct {
	Patient UserSummary       `json:"patient"`
	Diary   DiarySummaryView  `json:"diary"`
	Tasks   TaskSummaryView   `json:"tasks"`
	Games   []GameSummaryView `json:"games"`
}

const dateWire = "2006-01-02"

func userView(u domain.User) UserView {
	return UserView{
		ID:              u.ID,
		Nombre:          u.Name,
		Apellidos:       u.Surname,
		Email:           u.Email,
		FechaNacimiento: u.BirthDate.Format(dateWire),
		Role:            u.Role.String(),
		TherapistID:     u.TherapistID,
	}
}

func userSummary(u domain.User) UserSummary {
	return UserSummary{ID: u.ID, Nombre: u.Name, Email: u.Email}
}

func invitationView(inv domain.Invitation) InvitationView {
	return InvitationView{
		ID:          inv.ID,
		Email:       inv.Email,
		TherapistID: inv.TherapistID,
		CreatedAt:   inv.CreatedAt,
	}
}

func messageView(m domain.Message) MessageView {
	return MessageView{
		ID:          m.ID,
		SenderID:    m.SenderID,
		RecipientID: m.RecipientID,
		Body:        m.Body,
		CreatedAt:   m.CreatedAt,
	}
}

func diaryEntryView(e domain.DiaryEntry) DiaryEntryView {
	return DiaryEntryView{
		ID:        e.ID,
		Date:      e.EntryDate.Format(dateWire),
		Emotion:   e.Emotion,
		Intensity: e.Intensity,
		Note:      e.Note,
		CreatedAt: e.CreatedAt,
	}
}

func taskView(t domain.Task) TaskView {
	v := TaskView{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		CreatedAt:   t.CreatedAt,
	}
	if !t.DueDate.IsZero() {
		v.DueDate = t.DueDate.Format(dateWire)
	}
	return v
}

func routineView(r domain.Routine) RoutineView {
	return RoutineView{
		ID:        r.ID,
		Title:     r.Title,
		Weekday:   r.Weekday,
		TimeOfDay: r.TimeOfDay,
		Active:    r.Active,
	}
}

func sessionNoteView(n domain.SessionNote) SessionNoteView {
	return SessionNoteView{
		ID:          n.ID,
		TherapistID: n.TherapistID,
		Body:        n.Body,
		CreatedAt:   n.CreatedAt,
	}
}

func gameResultView(g domain.GameResult) GameResultView {
	return GameResultView{
		ID:       g.ID,
		Game:     g.Game,
		Score:    g.Score,
		Payload:  g.Payload,
		PlayedAt: g.PlayedAt,
	}
}

func patientSummaryResponse(s service.PatientSummary) PatientSummaryResponse {
	resp := PatientSummaryResponse{
		Patient: userSummary(s.Patient),
		Diary: DiarySummaryView{
			EntryCount:      s.Diary.EntryCount,
			MeanIntensity:   s.Diary.MeanIntensity,
			StdDevIntensity: s.Diary.StdDevIntensity,
			EmotionCounts:   s.Diary.EmotionCounts,
			EmotionEntropy:  s.Diary.EmotionEntropy,
			DominantEmotion: s.Diary.DominantEmotion,
		},
		Tasks: TaskSummaryView{
			Total:          s.Tasks.Total,
			Pending:        s.Tasks.Pending,
			Done:           s.Tasks.Done,
			CompletionRate: s.Tasks.CompletionRate,
		},
		Games: make([]GameSummaryView, 0, len(s.Games)),
	}
	for _, g := range s.Games {
		resp.Games = append(resp.Games, GameSummaryView{
			Game:      g.Game,
			Plays:     g.Plays,
			MeanScore: g.MeanScore,
			BestScore: g.BestScore,
		})
	}
	return resp
}
