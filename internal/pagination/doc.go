// Package pagination implements the interaction rules of a pagination control.
//
// The package owns no data. Callers supply the current window (page, page size,
// item count) and two callbacks; the Controller turns user gestures into
// validated navigation requests:
//   - First/Previous/Next/Last and RequestPage: stepwise and direct navigation
//   - RequestPageSize: page-size selection, which always resets to page 1
//   - OpenJump/UpdateJumpDraft/SubmitJump/CancelJump: jump-to-page input
//
// Invalid input is never an error. A rejected action is a silent no-op and the
// methods report whether they acted through their bool result.
package pagination
