package main

import (
	"math/rand"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/krew-solutions/observer-go/observer"
)

func main() {
	log := logrus.New()
	log.SetOutput(os.Stdout)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	subject := observer.NewSubject(rnd, log)

	a := observer.NewObserverA(log)
	b := observer.NewObserverB(log)

	subject.Attach(a)
	subject.Attach(b)

	if err := subject.SomeBusinessLogic(); err != nil {
		log.WithError(err).Fatal("business logic failed")
	}
	if err := subject.SomeBusinessLogic(); err != nil {
		log.WithError(err).Fatal("business logic failed")
	}

	if err := subject.Detach(a); err != nil {
		log.WithError(err).Fatal("detach failed")
	}

	if err := subject.SomeBusinessLogic(); err != nil {
		log.WithError(err).Fatal("business logic failed")
	}
}
