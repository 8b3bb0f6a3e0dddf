package disposable

// Disposable undoes a previously established registration, such as an
// observer subscription. Dispose is idempotent.
type Disposable interface {
	Dispose()
}

type DisposableImp struct {
	callback func()
	disposed bool
}

func NewDisposable(callback func()) *DisposableImp {
	return &DisposableImp{callback: callback}
}

func (d *DisposableImp) Dispose() {
	if d.disposed {
		return
	}
	d.disposed = true
	d.callback()
}

type CompositeDisposableImp struct {
	delegates []Disposable
}

// NewCompositeDisposable bundles several disposables into one; disposing
// the composite disposes every delegate.
func NewCompositeDisposable(delegates ...Disposable) *CompositeDisposableImp {
	return &CompositeDisposableImp{delegates: delegates}
}

func (d *CompositeDisposableImp) Dispose() {
	for _, delegate := range d.delegates {
		delegate.Dispose()
	}
}
