package formguard

import (
	"github.com/shandysiswandi/formguard/internal/formguard/inbound"
	"github.com/shandysiswandi/formguard/internal/formguard/usecase"
	"github.com/shandysiswandi/formguard/internal/pkg/config"
	"github.com/shandysiswandi/formguard/internal/pkg/validator"
)

type Dependency struct {
	Config    config.Config       `validate:"required"`
	Validator validator.Validator `validate:"required"`
	IO        inbound.IO
}

// New builds the form usecase and the command that serves it.
func New(dep Dependency) (*usecase.Usecase, *inbound.Command, error) {
	if dep.Validator == nil {
		return nil, nil, validator.ErrValidatorRequired
	}
	if err := dep.Validator.Validate(dep); err != nil {
		return nil, nil, err
	}

	uc, err := usecase.New(usecase.Dependency{
		Validator:        dep.Validator,
		UploadExtensions: dep.Config.GetArray("form.upload.allowed_extensions"),
	})
	if err != nil {
		return nil, nil, err
	}

	return uc, inbound.NewCommand(uc, dep.Config, dep.IO), nil
}
