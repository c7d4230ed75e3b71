package http

import (
	"rental-availability/internal/availability"
	"rental-availability/internal/model"
	"rental-availability/pkg/response"
)

// --- Request DTOs ---

type resolveReq struct {
	Query string `json:"query" binding:"max=500"`

	// Structured fallback for callers that predate free-text queries.
	Date      string `json:"date"       binding:"omitempty,datetime=2006-01-02"`
	StartDate string `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate   string `json:"end_date"   binding:"omitempty,datetime=2006-01-02"`
	Vague     bool   `json:"vague"`
}

func (r resolveReq) validate() error { return nil }

func (r resolveReq) toInput() availability.ResolveInput {
	return availability.ResolveInput{
		Query:     r.Query,
		Date:      r.Date,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		Vague:     r.Vague,
	}
}

// --- Response DTOs ---

// previewSize caps the preview list for vague-window answers.
const previewSize = 3

type weekResp struct {
	Start  string   `json:"start"`
	End    string   `json:"end"`
	Booked bool     `json:"booked"`
	Price  *float64 `json:"price"`
}

func newWeekResp(w model.Week) weekResp {
	return weekResp{
		Start:  w.Start.Format(response.DateFormat),
		End:    w.End.Format(response.DateFormat),
		Booked: w.Booked,
		Price:  w.Price,
	}
}

type resolveResp struct {
	Mode        string     `json:"mode"`
	Query       string     `json:"query"`
	Matched     bool       `json:"matched"`
	Week        *weekResp  `json:"week,omitempty"`
	Alternative *weekResp  `json:"alternative,omitempty"`
	Weeks       []weekResp `json:"weeks,omitempty"`
	Preview     []weekResp `json:"preview,omitempty"`
	Message     string     `json:"message"`
}

func (h *handler) newResolveResp(out availability.ResolveOutput) resolveResp {
	resp := resolveResp{
		Mode:    out.Mode,
		Query:   out.Query,
		Matched: out.Matched,
		Message: out.Message,
	}
	if out.Week != nil {
		w := newWeekResp(*out.Week)
		resp.Week = &w
	}
	if out.Alternative != nil {
		w := newWeekResp(*out.Alternative)
		resp.Alternative = &w
	}
	if out.Weeks != nil {
		resp.Weeks = make([]weekResp, len(out.Weeks))
		for i, w := range out.Weeks {
			resp.Weeks[i] = newWeekResp(w)
		}
		resp.Preview = resp.Weeks
		if len(resp.Preview) > previewSize {
			resp.Preview = resp.Preview[:previewSize]
		}
	}
	return resp
}
