package mock

import "github.com/fwojciec/docfinder"

var _ docfinder.Navigator = (*Navigator)(nil)

// Navigator is a mock implementation of docfinder.Navigator.
type Navigator struct {
	QueryFn        func() string
	ReplaceQueryFn func(query string)
	SubscribeFn    func(fn func(query string)) func()
}

func (n *Navigator) Query() string {
	return n.QueryFn()
}

func (n *Navigator) ReplaceQuery(query string) {
	n.ReplaceQueryFn(query)
}

func (n *Navigator) Subscribe(fn func(query string)) func() {
	return n.SubscribeFn(fn)
}
