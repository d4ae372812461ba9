// Package main is the entry point of interior-site, the website backend of an
// interior design studio. It serves a JSON API for the studio's portfolio,
// design proposals and settings, stores uploaded images on disk, and keeps
// its data in a relational database through gorm.
package main
