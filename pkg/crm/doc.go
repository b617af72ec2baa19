// Package crm exposes the salesdesk business service: contact, deal, and
// activity operations with their domain rules, pipeline analytics, and flat
// exports. The service owns its store handle exclusively; open one instance
// per database and close it on shutdown.
package crm

// Version is the salesdesk release version.
const Version = "0.1.0"
