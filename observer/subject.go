package observer

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/oklog/ulid/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/krew-solutions/observer-go/disposable"
	"github.com/krew-solutions/observer-go/option"
)

var ErrObserverNotFound = fmt.Errorf("observer: observer not found")

type SubjectImp struct {
	state     option.Option[int]
	observers []Observer
	cycle     ulid.ULID
	rnd       Rand
	log       logrus.FieldLogger
}

func NewSubject(rnd Rand, log logrus.FieldLogger) *SubjectImp {
	return &SubjectImp{
		state:     option.Nothing[int](),
		observers: make([]Observer, 0),
		rnd:       rnd,
		log:       log,
	}
}

func (s *SubjectImp) Attach(o Observer) disposable.Disposable {
	s.observers = append(s.observers, o)
	s.log.WithField("observer", o.ID()).Info("subject: attached an observer")
	return disposable.NewDisposable(func() {
		_ = s.Detach(o)
	})
}

func (s *SubjectImp) Detach(o Observer) error {
	for i, registered := range s.observers {
		if registered == o {
			s.observers = append(s.observers[:i], s.observers[i+1:]...)
			s.log.WithField("observer", o.ID()).Info("subject: detached an observer")
			return nil
		}
	}
	return errors.Wrapf(ErrObserverNotFound, "detach %s", o.ID())
}

func (s *SubjectImp) Notify() error {
	s.cycle = ulid.Make()
	s.log.WithField("cycle", s.cycle).Info("subject: notifying observers")

	// Snapshot so that an observer attaching or detaching during its own
	// Update does not change the in-flight cycle.
	snapshot := make([]Observer, len(s.observers))
	copy(snapshot, s.observers)

	var occurredErr error
	for _, o := range snapshot {
		if err := o.Update(s); err != nil {
			occurredErr = multierror.Append(occurredErr, err)
		}
	}
	return occurredErr
}

func (s *SubjectImp) State() option.Option[int] {
	return s.state
}

func (s *SubjectImp) Cycle() ulid.ULID {
	return s.cycle
}

// SomeBusinessLogic is the sole mutator of the subject's state. It draws a
// uniform integer in [0, 10), assigns it, and notifies the observers.
func (s *SubjectImp) SomeBusinessLogic() error {
	s.log.Info("subject: doing something important")
	s.state = option.Some(s.rnd.Intn(10))
	s.log.WithField("state", s.state.Unwrap()).Info("subject: my state has just changed")
	return s.Notify()
}
