package usecase

import (
	"context"

	domainSession "github.com/dfjacobs/tropo-gateway/domains/session"
	"github.com/dfjacobs/tropo-gateway/validations"
)

type serviceSession struct {
	client domainSession.ISignalClient
}

func NewSessionService(client domainSession.ISignalClient) domainSession.ISessionUsecase {
	return &serviceSession{
		client: client,
	}
}

func (service serviceSession) Signal(ctx context.Context, request domainSession.SignalRequest) (response domainSession.SignalResponse, err error) {
	if err = validations.ValidateSignal(ctx, request); err != nil {
		return response, err
	}

	status, err := service.client.Signal(ctx, request.SessionID, request.Event)
	if err != nil {
		return response, err
	}

	response.SessionID = request.SessionID
	response.Event = eventOrDefault(request.Event)
	response.Status = status
	return response, nil
}

func (service serviceSession) SignalAsync(ctx context.Context, request domainSession.SignalRequest) (response domainSession.SignalResponse, err error) {
	if err = validations.ValidateSignal(ctx, request); err != nil {
		return response, err
	}

	outcome := <-service.client.SignalAsync(ctx, request.SessionID, request.Event)
	if outcome.Err != nil {
		return response, outcome.Err
	}

	response.SessionID = request.SessionID
	response.Event = eventOrDefault(request.Event)
	response.Status = outcome.Status
	return response, nil
}

func (service serviceSession) SignalURL(ctx context.Context, request domainSession.SignalRequest) (response domainSession.SignalURLResponse, err error) {
	if err = validations.ValidateSignalURL(ctx, request); err != nil {
		return response, err
	}

	response.SessionID = request.SessionID
	response.Event = eventOrDefault(request.Event)
	response.URL = service.client.SignalURL(request.SessionID, request.Event)
	return response, nil
}

func (service serviceSession) CreateSession(ctx context.Context, request domainSession.CreateRequest) (*domainSession.SessionHandle, error) {
	if err := validations.ValidateCreateSession(ctx, request); err != nil {
		return nil, err
	}

	return service.client.CreateSession(ctx, request.Params)
}

func eventOrDefault(event string) string {
	if event == "" {
		return domainSession.DefaultEvent
	}
	return event
}
