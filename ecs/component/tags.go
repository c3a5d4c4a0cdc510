package component

// PrimaryTag marks the body every orbit is measured from.
type PrimaryTag struct{}

var PrimaryTagComponent = NewComponent[PrimaryTag]()

// AttractorTag marks bodies that pull on the rocket.
type AttractorTag struct{}

var AttractorTagComponent = NewComponent[AttractorTag]()

type SessionTag struct{}

var SessionTagComponent = NewComponent[SessionTag]()
