package observer

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ObserverAImp reacts when the subject's state is below 3.
type ObserverAImp struct {
	id  string
	log logrus.FieldLogger
}

func NewObserverA(log logrus.FieldLogger) *ObserverAImp {
	return &ObserverAImp{id: uuid.NewString(), log: log}
}

func (o *ObserverAImp) Update(s Subject) error {
	state := s.State()
	if state.IsNothing() {
		return nil
	}
	if state.Unwrap() < 3 {
		o.log.WithFields(logrus.Fields{
			"observer": o.id,
			"state":    state.Unwrap(),
			"cycle":    s.Cycle(),
		}).Info("observer A: reacting to the event")
	}
	return nil
}

func (o *ObserverAImp) ID() string {
	return o.id
}

// ObserverBImp reacts when the subject's state is zero or at least 2.
type ObserverBImp struct {
	id  string
	log logrus.FieldLogger
}

func NewObserverB(log logrus.FieldLogger) *ObserverBImp {
	return &ObserverBImp{id: uuid.NewString(), log: log}
}

func (o *ObserverBImp) Update(s Subject) error {
	state := s.State()
	if state.IsNothing() {
		return nil
	}
	if state.Unwrap() == 0 || state.Unwrap() >= 2 {
		o.log.WithFields(logrus.Fields{
			"observer": o.id,
			"state":    state.Unwrap(),
			"cycle":    s.Cycle(),
		}).Info("observer B: reacting to the event")
	}
	return nil
}

func (o *ObserverBImp) ID() string {
	return o.id
}
