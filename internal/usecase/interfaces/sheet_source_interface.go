package interfaces

import "context"

//go:generate mockgen -source=sheet_source_interface.go -destination=mocks/sheet_source_mock.go -package=mock_interfaces

// SheetPayload carries the raw text of the three price-sheet tabs.
type SheetPayload struct {
	Rates  string
	Stones string
	Slabs  string
}

// ISheetSource fetches the published price sheet.
//
// FetchAll is all-or-nothing: either every tab was retrieved successfully or
// an error is returned and no partial payload is exposed, so a failed sync
// can never mutate settings.
type ISheetSource interface {
	FetchAll(ctx context.Context) (SheetPayload, error)
}
