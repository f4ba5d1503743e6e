package service

import (
	"fmt"

	"github.com/anggasct/fluo"

	"github.com/mishasvintus/product_review_service/internal/domain"
)

// Lifecycle events. The event data is always the aggregated review status.
const (
	eventSubmit   = "submit"
	eventReviewed = "reviewed"
)

// lifecycleMachine drives a document's publication state from its review status.
//
//	draft|reviewing|published --submit--> reviewing
//	reviewing --reviewed [approved]--> published
//	reviewing --reviewed [rejected]--> draft
//	published --reviewed [not approved]--> reviewing
//
// A reviewed event that matches no transition leaves the lifecycle as it is.
type lifecycleMachine struct {
	definition fluo.MachineDefinition
}

func newLifecycleMachine() *lifecycleMachine {
	draft := string(domain.LifecycleDraft)
	reviewing := string(domain.LifecycleReviewing)
	published := string(domain.LifecyclePublished)

	builder := fluo.NewMachine()

	builder.State(draft).Initial().
		To(reviewing).On(eventSubmit)

	builder.State(reviewing).
		To(reviewing).On(eventSubmit).
		To(published).On(eventReviewed).When(statusIs(domain.StatusApproved)).
		To(draft).On(eventReviewed).When(statusIs(domain.StatusRejected))

	builder.State(published).
		To(reviewing).On(eventSubmit).
		To(reviewing).On(eventReviewed).Unless(statusIs(domain.StatusApproved))

	return &lifecycleMachine{definition: builder.Build()}
}

func statusIs(want domain.ReviewStatus) fluo.GuardFunc {
	return func(ctx fluo.Context) bool {
		status, ok := ctx.GetEventData().(domain.ReviewStatus)
		return ok && status == want
	}
}

// fire runs event from the given lifecycle and returns the resulting lifecycle.
// moved is false when no transition accepted the event.
func (m *lifecycleMachine) fire(from domain.LifecycleStatus, event string, status domain.ReviewStatus) (next domain.LifecycleStatus, moved bool, err error) {
	instance := m.definition.CreateInstance()
	if err := instance.Start(); err != nil {
		return from, false, fmt.Errorf("failed to start lifecycle: %w", err)
	}
	if err := instance.SetState(string(from)); err != nil {
		return from, false, fmt.Errorf("failed to restore lifecycle %q: %w", from, err)
	}

	result := instance.HandleEvent(event, status)
	if !result.Success() {
		return from, false, nil
	}

	next, err = domain.NewLifecycleStatus(result.CurrentState)
	if err != nil {
		return from, false, err
	}
	return next, true, nil
}

// submit moves a document into review from any lifecycle.
func (m *lifecycleMachine) submit(doc domain.Document) (domain.Document, error) {
	next, moved, err := m.fire(doc.Lifecycle, eventSubmit, domain.Aggregate(doc.Review))
	if err != nil {
		return doc, err
	}
	if !moved {
		return doc, fmt.Errorf("cannot submit document in lifecycle %q", doc.Lifecycle)
	}
	doc.Lifecycle = next
	return doc, nil
}

// reviewed lets the lifecycle follow the document's current review status.
func (m *lifecycleMachine) reviewed(doc domain.Document) (domain.Document, error) {
	next, _, err := m.fire(doc.Lifecycle, eventReviewed, domain.Aggregate(doc.Review))
	if err != nil {
		return doc, err
	}
	doc.Lifecycle = next
	return doc, nil
}
