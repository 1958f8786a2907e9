package agenda

import (
	agendav1 "github.com/pestebani/tonic-server/api/gen/go/agenda/v1"
	apperrors "github.com/pestebani/tonic-server/internal/platform/errors"
	"github.com/pestebani/tonic-server/internal/services/agenda/storage"
)

func agendaToProto(record storage.Agenda) *agendav1.Agenda {
	return &agendav1.Agenda{
		Id:    record.ID,
		Name:  record.Name,
		Email: record.Email,
		Phone: record.Phone,
	}
}

// agendaFromProto copies the wire record verbatim; a missing payload is
// EmptyInput.
func agendaFromProto(in *agendav1.Agenda) (storage.Agenda, error) {
	if in == nil {
		return storage.Agenda{}, apperrors.EmptyInput()
	}
	return storage.Agenda{
		ID:    in.GetId(),
		Name:  in.GetName(),
		Email: in.GetEmail(),
		Phone: in.GetPhone(),
	}, nil
}

func agendasToProto(records []storage.Agenda) []*agendav1.Agenda {
	out := make([]*agendav1.Agenda, 0, len(records))
	for _, record := range records {
		out = append(out, agendaToProto(record))
	}
	return out
}
