// Package gazetteer contains the core of the geolocation proxy
// service: IPv4 address validation, the provider contract, the
// lookup service which glues both together and a closed error
// taxonomy which maps every failure onto a stable HTTP
// representation.
//
// The package is transport-agnostic. Concrete upstream adapters live
// in the providers package, the HTTP surface lives in the api
// package. Anything here can be exercised with a test double: the
// Service depends on the Provider interface only, providers depend
// on the HTTPClient interface only.
package gazetteer
