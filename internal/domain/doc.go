// Package domain defines the host bridge contract, the display contract and the
// plain data types that flow between them. It contains types and interfaces only.
package domain
