package usecase

import (
	"context"
	"errors"

	"github.com/shandysiswandi/formguard/internal/formguard/entity"
	"github.com/shandysiswandi/formguard/internal/pkg/goerror"
)

func (s *Usecase) byKind(ctx context.Context, kind entity.Kind, src FieldSource) entity.Outcome {
	out, err := s.Validate(ctx, kind, src)
	var ge *goerror.Error
	if errors.As(err, &ge) {
		return entity.Failed(kind, "", entity.ReasonNone, ge.Msg())
	}

	return out
}

// Login requires a user id and a password.
func (s *Usecase) Login(ctx context.Context, src FieldSource) entity.Outcome {
	return s.byKind(ctx, entity.KindLogin, src)
}

// Register requires every field, then checks the email shape, the password
// length and that the confirmation matches, in that order.
func (s *Usecase) Register(ctx context.Context, src FieldSource) entity.Outcome {
	return s.byKind(ctx, entity.KindRegister, src)
}

func (s *Usecase) Student(ctx context.Context, src FieldSource) entity.Outcome {
	return s.byKind(ctx, entity.KindStudent, src)
}

func (s *Usecase) Subject(ctx context.Context, src FieldSource) entity.Outcome {
	return s.byKind(ctx, entity.KindSubject, src)
}

func (s *Usecase) Unit(ctx context.Context, src FieldSource) entity.Outcome {
	return s.byKind(ctx, entity.KindUnit, src)
}

func (s *Usecase) Program(ctx context.Context, src FieldSource) entity.Outcome {
	return s.byKind(ctx, entity.KindProgram, src)
}

func (s *Usecase) Course(ctx context.Context, src FieldSource) entity.Outcome {
	return s.byKind(ctx, entity.KindCourse, src)
}

// Semester requires both dropdown selections.
func (s *Usecase) Semester(ctx context.Context, src FieldSource) entity.Outcome {
	return s.byKind(ctx, entity.KindSemester, src)
}

// Upload requires a chosen file and, when upload extensions are configured,
// a file name ending in one of them.
func (s *Usecase) Upload(ctx context.Context, src FieldSource) entity.Outcome {
	return s.byKind(ctx, entity.KindUpload, src)
}

func (s *Usecase) Search(ctx context.Context, src FieldSource) entity.Outcome {
	return s.byKind(ctx, entity.KindSearch, src)
}
