// Package roi computes the return on investment of automated inventory counting
// compared to manual counting.
//
// The calculation is a single closed-form function. Its result is either Invalid,
// when the automated count is not faster than the manual one, or Computed, carrying
// the seven reported financial metrics.
package roi
