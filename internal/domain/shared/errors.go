package shared

import "fmt"

// DomainError is the base error type for all domain errors
type DomainError struct {
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// InsufficientResourcesError is returned when a debit-bearing action cannot be
// afforded with the current resource balance
type InsufficientResourcesError struct {
	*DomainError
	Resource  ResourceKind
	Required  float64
	Available float64
}

func NewInsufficientResourcesError(resource ResourceKind, required, available float64) *InsufficientResourcesError {
	return &InsufficientResourcesError{
		DomainError: &DomainError{
			Message: fmt.Sprintf("insufficient %s: need %.0f, have %.0f", resource, required, available),
		},
		Resource:  resource,
		Required:  required,
		Available: available,
	}
}

// UnknownContentError is returned when an identifier does not resolve against
// the progression tables
type UnknownContentError struct {
	*DomainError
	Kind string
	ID   string
}

func NewUnknownContentError(kind, id string) *UnknownContentError {
	return &UnknownContentError{
		DomainError: &DomainError{Message: fmt.Sprintf("unknown %s: %s", kind, id)},
		Kind:        kind,
		ID:          id,
	}
}

// ModeLockedError is returned when the player tries to switch to a gameplay
// mode that has not been unlocked yet
type ModeLockedError struct {
	*DomainError
	Mode GameMode
}

func NewModeLockedError(mode GameMode) *ModeLockedError {
	return &ModeLockedError{
		DomainError: &DomainError{Message: fmt.Sprintf("mode %s is not unlocked", mode)},
		Mode:        mode,
	}
}

// PlotNotReadyError is returned when a harvest is attempted on a plot whose
// seed has not finished growing
type PlotNotReadyError struct {
	*DomainError
	PlotID    int
	Remaining float64
}

func NewPlotNotReadyError(plotID int, remainingSeconds float64) *PlotNotReadyError {
	return &PlotNotReadyError{
		DomainError: &DomainError{
			Message: fmt.Sprintf("plot %d is not ready: %.0fs remaining", plotID, remainingSeconds),
		},
		PlotID:    plotID,
		Remaining: remainingSeconds,
	}
}

// ValidationError reports an invalid field value
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
