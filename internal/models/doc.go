// Package models defines the core domain records for Splitledger.
//
// # Records
//
// All records are plain data with no behavior beyond copying and partial
// updates:
//   - User: someone who can pay for or share in an expense
//   - Group: a named list of members that expenses and settlements belong to
//   - Expense: a single shared cost with one payer and per-member shares
//   - Settlement: a payment between two members that reduces a balance
//   - AppSettings: the process-wide settings singleton, including the
//     daily expense quota counters
//
// # Relationships
//
// Relationships use ID strings instead of pointers. References (group IDs,
// payer and participant user IDs, group members) are not checked for
// existence by the store; the validation package offers an opt-in check.
//
// # Money
//
// All amounts are decimal.Decimal values in the implicit currency of the
// app settings.
package models
