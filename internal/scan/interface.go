package scan

import (
	"context"

	"jobtracker/pkg/domain"
)

//go:generate mockgen -package mockscan -source=interface.go -destination=mock/mockscan.go *
type Scanner interface {
	Run(ctx context.Context, progress ProgressFunc) (Result, error)
	Enqueue(ctx context.Context) (bool, error)
	History(ctx context.Context, limit uint) ([]domain.ScanRun, error)
}
