package account

import (
	"context"

	domain "github.com/cermati/iamx-redash/internal/domain/account"
)

// PageFetcher is the non-owning handle a batch iterator uses to request
// subsequent pages. It exists so the iterator relates back to the connector
// without owning it.
type PageFetcher interface {
	FetchPage(ctx context.Context, q domain.ListQuery) (domain.Page, error)
}

// BatchIterator is a lazy, forward-only cursor over a finite directory
// listing. Each Next call issues a fresh authoritative page fetch and
// returns a new iterator; existing iterators are never mutated. The listing
// is not snapshot-isolated: records can shift between pages if the
// directory changes mid-iteration.
type BatchIterator struct {
	Results  []domain.User
	Page     int
	PageSize int
	Count    int
	Order    string

	query   domain.ListQuery
	fetcher PageFetcher
}

func newBatchIterator(fetcher PageFetcher, query domain.ListQuery, page domain.Page) *BatchIterator {
	current := page.Page
	if current <= 0 {
		current = query.Page
	}
	size := page.PageSize
	if size <= 0 {
		size = query.PageSize
	}

	return &BatchIterator{
		Results:  page.Results,
		Page:     current,
		PageSize: size,
		Count:    page.Count,
		Order:    query.Order,
		query:    query,
		fetcher:  fetcher,
	}
}

// HasNext is a pure computation over the current snapshot: true exactly
// when the current page index is below ceil(count / pageSize).
func (it *BatchIterator) HasNext() bool {
	total := domain.Page{Count: it.Count, PageSize: it.PageSize}.TotalPages()
	return it.Page < total
}

// Next fetches the following page and wraps it in a fresh iterator. The
// terminal signal is a nil iterator with a nil error.
func (it *BatchIterator) Next(ctx context.Context) (*BatchIterator, error) {
	if !it.HasNext() {
		return nil, nil
	}

	query := it.query
	query.Page = it.Page + 1

	page, err := it.fetcher.FetchPage(ctx, query)
	if err != nil {
		return nil, err
	}

	return newBatchIterator(it.fetcher, query, page), nil
}

type FetchAccountBatch interface {
	Execute(ctx context.Context, in ShowAccountsInput) (*BatchIterator, error)
}

type fetchAccountBatch struct {
	directory domain.Directory
}

func NewFetchAccountBatch(directory domain.Directory) FetchAccountBatch {
	return &fetchAccountBatch{directory: directory}
}

func (uc *fetchAccountBatch) FetchPage(ctx context.Context, q domain.ListQuery) (domain.Page, error) {
	return uc.directory.ListUsers(ctx, q)
}

func (uc *fetchAccountBatch) Execute(ctx context.Context, in ShowAccountsInput) (*BatchIterator, error) {
	query, err := in.toQuery()
	if err != nil {
		return nil, err
	}

	page, err := uc.FetchPage(ctx, query)
	if err != nil {
		return nil, err
	}

	return newBatchIterator(uc, query, page), nil
}
