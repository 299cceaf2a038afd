// Package isp shows the Interface Segregation Principle on membership perks.
//
// Before: one fat Membership interface makes every plan implement every
// perk. The studio plan must stub workout streaming, the online plan must
// stub class booking, and both stubs fail at runtime.
//
// After: one small interface per perk. Each plan implements only what it can
// honor, and consumers ask for exactly the perk they use.
package isp
