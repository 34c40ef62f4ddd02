// Package sample holds the sample spec and channel map types used by the
// sound server side of the bridge, and their conversion to HAL formats and
// channel masks.
package sample
