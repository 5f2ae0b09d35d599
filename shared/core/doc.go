// Package core contains the domain events and pure domain rules of EventHub:
// users with a single session slot, user-created events with a bounded attendee counter,
// and ticket registrations for those events.
//
// Every piece of state is a projection of these events. Aggregates are never stored; each
// feature slice replays the events of its consistency boundary and decides on one new event.
//
// In Domain-Driven Design or Hexagonal Architecture terminology, this would be
// called the 'domain' layer.
package core
