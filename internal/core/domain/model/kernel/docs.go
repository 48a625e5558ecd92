// Package kernel holds the value objects shared by every aggregate:
// identifiers, money and discount percentages, and the actor attributed on
// audit records.
package kernel
