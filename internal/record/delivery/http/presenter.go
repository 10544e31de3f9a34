package http

import "records-srv/internal/record"

type recordResp struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type listResp struct {
	Records    []recordResp `json:"records"`
	NextOffset *int64       `json:"next_offset"`
}

func newListResp(out record.ListOutput) listResp {
	records := make([]recordResp, len(out.Records))
	for i, rec := range out.Records {
		records[i] = recordResp{
			ID:       rec.ID,
			Name:     rec.Name,
			Username: rec.Username,
			Email:    rec.Email,
		}
	}

	return listResp{
		Records:    records,
		NextOffset: out.NextOffset,
	}
}
