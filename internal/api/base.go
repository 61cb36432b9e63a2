package api

// DefaultBaseURL is where the catalog service listens unless configured.
const DefaultBaseURL = "http://localhost:8000"
