package validations

import (
	"context"

	domainSession "github.com/dfjacobs/tropo-gateway/domains/session"
	pkgError "github.com/dfjacobs/tropo-gateway/pkg/error"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

func ValidateSignal(ctx context.Context, request domainSession.SignalRequest) error {
	err := validation.ValidateStructWithContext(ctx, &request,
		validation.Field(&request.SessionID, validation.Required),
	)

	if err != nil {
		return pkgError.ValidationError(err.Error())
	}

	return nil
}

func ValidateSignalURL(ctx context.Context, request domainSession.SignalRequest) error {
	err := validation.ValidateStructWithContext(ctx, &request,
		validation.Field(&request.SessionID, validation.Required),
	)

	if err != nil {
		return pkgError.ValidationError(err.Error())
	}

	return nil
}

func ValidateCreateSession(ctx context.Context, request domainSession.CreateRequest) error {
	err := validation.ValidateStructWithContext(ctx, &request,
		validation.Field(&request.Params, validation.By(paramKeysNotBlank)),
	)

	if err != nil {
		return pkgError.ValidationError(err.Error())
	}

	return nil
}

func paramKeysNotBlank(value any) error {
	params, ok := value.(map[string]string)
	if !ok || params == nil {
		return nil
	}
	for key := range params {
		if key == "" {
			return validation.NewError("validation_param_key_blank", "parameter names cannot be blank")
		}
	}
	return nil
}
