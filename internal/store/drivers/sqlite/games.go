package sqlite

import (
	"context"
	"strings"

	"github.com/janus-care/janus/internal/domain"
)

type gameResultsRepo struct {
	db db
}

func (r *gameResultsRepo) CreateGameResult(ctx context.Context, g domain.GameResult) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO game_results (id, patient_id, game, score, payload, played_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		g.ID, g.PatientID, g.Game, g.Score, g.Payload, g.PlayedAt,
	)
	return mapConstraint(err)
}

func (r *gameResultsRepo) ListGameResults(ctx context.Context, patientID, game string) ([]domain.GameResult, error) {
	var (
		sb   strings.Builder
		args []any
	)
	sb.WriteString(`SELECT id, patient_id, game, score, payload, played_at
		 FROM game_results WHERE patient_id = ?`)
	args = append(args, patientID)

	if game != "" {
		sb.WriteString(` AND game = ?`)
		args = append(args, game)
	}
	sb.WriteString(` ORDER BY played_at, id`)

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.GameResult
	for rows.Next() {
		var g domain.GameResult
		if err := rows.Scan(&g.ID, &g.PatientID, &g.Game, &g.Score, &g.Payload, &g.PlayedAt); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}
