package service

import "errors"

// Planner failure taxonomy. All of these are client-facing; the handler
// layer maps them to status codes. Resolution-time "item vanished" is not
// an error at all — it degrades to a nil resolved value.
var (
	// ErrInvalidRequest — missing or malformed top-level request fields.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrMalformedReference — an item reference id is not a valid identity token.
	ErrMalformedReference = errors.New("malformed item reference")

	// ErrUnknownReferenceKind — the reference discriminant is neither variant.
	ErrUnknownReferenceKind = errors.New("unknown reference kind")

	// ErrReferenceNotFound — the referenced item does not exist in its store.
	ErrReferenceNotFound = errors.New("referenced item not found")

	// ErrOwnershipViolation — a wardrobe reference to an item the planning
	// user does not own.
	ErrOwnershipViolation = errors.New("referenced item not owned by user")

	// ErrPlanNotFound — no such plan for this owner (other users' plans are
	// not disclosed).
	ErrPlanNotFound = errors.New("plan not found")
)
