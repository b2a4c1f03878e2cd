package model

type Provider[T any] func() (T, error)

type Transformer[M any, N any] func(M) (N, error)

type Operator[M any] func(M) error

type Folder[M any, N any] func(N, M) (N, error)

type Decorator[M any] func(M) M

func FixedProvider[T any](t T) Provider[T] {
	return func() (T, error) {
		return t, nil
	}
}

func ErrorProvider[T any](err error) Provider[T] {
	return func() (T, error) {
		var t T
		return t, err
	}
}

func Map[M any, N any](f Transformer[M, N]) func(p Provider[M]) Provider[N] {
	return func(p Provider[M]) Provider[N] {
		return func() (N, error) {
			m, err := p()
			if err != nil {
				var n N
				return n, err
			}
			return f(m)
		}
	}
}

func SliceMap[M any, N any](f Transformer[M, N]) func(p Provider[[]M]) Provider[[]N] {
	return func(p Provider[[]M]) Provider[[]N] {
		return func() ([]N, error) {
			ms, err := p()
			if err != nil {
				return nil, err
			}
			ns := make([]N, 0, len(ms))
			for _, m := range ms {
				n, err := f(m)
				if err != nil {
					return nil, err
				}
				ns = append(ns, n)
			}
			return ns, nil
		}
	}
}

func Fold[M any, N any](p Provider[[]M], supplier Provider[N], folder Folder[M, N]) Provider[N] {
	return func() (N, error) {
		ms, err := p()
		if err != nil {
			var n N
			return n, err
		}
		n, err := supplier()
		if err != nil {
			return n, err
		}
		for _, m := range ms {
			n, err = folder(n, m)
			if err != nil {
				return n, err
			}
		}
		return n, nil
	}
}

func ForEachSlice[M any](p Provider[[]M], f Operator[M]) error {
	ms, err := p()
	if err != nil {
		return err
	}
	for _, m := range ms {
		if err = f(m); err != nil {
			return err
		}
	}
	return nil
}

func Decorate[M any](decorators []Decorator[M]) func(M) M {
	return func(m M) M {
		for _, d := range decorators {
			m = d(m)
		}
		return m
	}
}

//goland:noinspection GoUnusedExportedFunction
func CollapseProvider[A, T any](f func(A) Provider[T]) func(A) (T, error) {
	return func(a A) (T, error) {
		return f(a)()
	}
}

//goland:noinspection GoUnusedExportedFunction
func LiftToProvider[A, T any](f func(A) (T, error)) func(A) Provider[T] {
	return func(a A) Provider[T] {
		return func() (T, error) {
			return f(a)
		}
	}
}
