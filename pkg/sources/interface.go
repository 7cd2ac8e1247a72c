package sources

import "context"

// Catalog is the remote movie catalog. Implementations never fail loudly:
// every call returns a Result whose Item is empty when the request failed.
type Catalog interface {
	Trending(ctx context.Context) Result
	Upcoming(ctx context.Context) Result
	TopRated(ctx context.Context) Result

	MovieDetails(ctx context.Context, id string) Result
	MovieCredits(ctx context.Context, id string) Result
	SimilarMovies(ctx context.Context, id string) Result

	PersonDetails(ctx context.Context, id string) Result
	PersonMovies(ctx context.Context, id string) Result

	SearchMovies(ctx context.Context, params SearchParams) Result
}
