package echo

import (
	"net/http"

	"github.com/labstack/echo/v4"

	app "github.com/cermati/iamx-redash/internal/application/account"
)

// batchOutput is one iterator snapshot plus the continuation the caller
// needs to request the next page: a fresh fetch with next_page, same
// page_size and order.
type batchOutput struct {
	Results  []app.AccountOutput `json:"results"`
	Page     int                 `json:"page"`
	PageSize int                 `json:"page_size"`
	Count    int                 `json:"count"`
	Order    string              `json:"order"`
	HasNext  bool                `json:"has_next"`
	NextPage int                 `json:"next_page,omitempty"`
}

type BatchHandler struct {
	fetchBatch app.FetchAccountBatch
	snapshot   app.SnapshotDirectory
}

func NewBatchHandler(fetchBatch app.FetchAccountBatch, snapshot app.SnapshotDirectory) *BatchHandler {
	return &BatchHandler{fetchBatch: fetchBatch, snapshot: snapshot}
}

func (h *BatchHandler) FetchBatch(c echo.Context) error {
	in, err := queryOptionsFromRequest(c)
	if err != nil {
		return writeError(c, http.StatusBadRequest, "invalid_query", err.Error())
	}

	it, err := h.fetchBatch.Execute(c.Request().Context(), in)
	if err != nil {
		return mapDomainError(c, err)
	}

	out := batchOutput{
		Results:  make([]app.AccountOutput, 0, len(it.Results)),
		Page:     it.Page,
		PageSize: it.PageSize,
		Count:    it.Count,
		Order:    it.Order,
		HasNext:  it.HasNext(),
	}
	for _, u := range it.Results {
		out.Results = append(out.Results, app.AccountFromUser(u))
	}
	if out.HasNext {
		out.NextPage = it.Page + 1
	}

	return c.JSON(http.StatusOK, apiResponse{Data: out})
}

type snapshotRequest struct {
	Status   string `json:"status"`
	PageSize int    `json:"page_size"`
}

func (h *BatchHandler) Snapshot(c echo.Context) error {
	var body snapshotRequest
	if err := c.Bind(&body); err != nil {
		return writeError(c, http.StatusBadRequest, "invalid_request", "request body must be a snapshot request")
	}

	out, err := h.snapshot.Execute(c.Request().Context(), app.SnapshotDirectoryInput{
		Status:   body.Status,
		PageSize: body.PageSize,
	})
	if err != nil {
		return mapDomainError(c, err)
	}

	return c.JSON(http.StatusCreated, apiResponse{Data: out})
}
