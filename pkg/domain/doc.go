// Package domain contains the entities shared across the service: link
// destinations produced by the classifier, persisted resolutions and page
// previews. The types carry no infrastructure concerns.
package domain
