package mail

import (
	"encoding/json"

	"contactbook/internal/domain/service"

	"github.com/hibiken/asynq"
	"github.com/pkg/errors"
)

// TypeVerification is the asynq task type carrying a verification mail.
const TypeVerification = "mail:verification"

// NewVerificationTask encodes mail as a queued task.
func NewVerificationTask(mail service.VerificationMail) (*asynq.Task, error) {
	data, err := json.Marshal(mail)
	if err != nil {
		return nil, errors.Wrap(err, "marshal verification payload")
	}

	return asynq.NewTask(TypeVerification, data), nil
}

// ParseVerificationTask decodes the payload written by NewVerificationTask.
func ParseVerificationTask(task *asynq.Task) (service.VerificationMail, error) {
	var mail service.VerificationMail
	if err := json.Unmarshal(task.Payload(), &mail); err != nil {
		return service.VerificationMail{}, errors.Wrap(err, "unmarshal payload")
	}
	if mail.To == "" || mail.VerificationToken == "" {
		return service.VerificationMail{}, errors.New("verification payload is incomplete")
	}

	return mail, nil
}
