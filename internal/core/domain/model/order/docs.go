// Package order provides domain entities and business logic for order
// management in the storefront. It implements the Order aggregate root with
// lifecycle management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages identity, pricing figures,
//     payment state, and the status lifecycle
//   - Status: A state machine encoding the legal progression
//     received -> preparing -> ready -> [out_for_delivery ->] completed,
//     with a cancellation side-branch from received and preparing
//   - Item and ItemVariant: denormalized order lines captured at checkout
//   - DeliveryType, PaymentMethod, PaymentStatus enumerations
//
// Key business rules:
//   - Pickup orders skip out_for_delivery entirely
//   - Completed and cancelled are terminal; automatic progression from a
//     terminal status is a no-op, a manual request is rejected
//   - Manual transitions outside the transition table are always rejected,
//     never silently coerced
//   - Cash orders are marked paid when the handover completes
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
