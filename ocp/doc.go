// Package ocp shows the Open/Closed Principle on membership tiers.
//
// Before: SessionsByKind is a switch that owns every tier. Each new tier is
// an edit to tested code.
//
// After: Membership is the extension point. A new tier is a new type; the
// aggregation code never changes.
package ocp
