package inbound

import (
	"context"

	"github.com/shandysiswandi/formguard/internal/formguard/entity"
	"github.com/shandysiswandi/formguard/internal/formguard/usecase"
)

type uc interface {
	Validate(ctx context.Context, kind entity.Kind, src usecase.FieldSource) (entity.Outcome, error)
	Forms() []entity.Form
}
