package sources

import "github.com/kerbaras/movies/pkg/data"

// Result is the outcome of one catalog call. Item is never nil; on failure
// it is empty and Err says why. Callers that only render can ignore Err,
// since an empty Item and an Item without the expected field both mean
// "no data".
type Result struct {
	Item data.Item
	Err  error
}

func (r Result) OK() bool {
	return r.Err == nil
}

// Results is the "results" list of paged endpoints (trending, search, ...).
func (r Result) Results() []data.Item {
	return r.Item.Items("results")
}

// Cast is the "cast" list of credits endpoints.
func (r Result) Cast() []data.Item {
	return r.Item.Items("cast")
}

func failed(err error) Result {
	return Result{Item: data.Item{}, Err: err}
}
