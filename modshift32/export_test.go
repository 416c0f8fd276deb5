package modshift32

// Exported aliases for testing the individual stages
// from the modshift32_test package.

// MixForTest exposes mix.
var MixForTest = mix

// AvalancheForTest exposes avalanche.
var AvalancheForTest = avalanche

// ExpandForTest exposes expand.
var ExpandForTest = expand

// Modulus exposes modulus.
const Modulus = modulus
