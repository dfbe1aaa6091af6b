package service

import (
	"heatpump_portal_backend/internal/healthimpacts/client"
	"heatpump_portal_backend/internal/healthimpacts/transport"
)

// DemoMessage is the fixed advisory shown whenever the bundled dataset
// is substituted for a live provider response.
const DemoMessage = "Using demo data - Health Impacts API requires special access"

// demoRows is the bundled fallback dataset, keyed by state FIPS. It is
// plain data so it can be swapped or extended without touching the
// aggregation control flow, and unit-tested without network mocking.
// States without an entry fall back to an empty row set.
var demoRows = map[string][]transport.MetricRow{
	"08": { // Colorado
		{State: "CO", StateFips: "08", CountyFips: "031", County: "Denver", Upgrade: client.CanonicalUpgrade, Metric: client.MetricMortality, Value: 2.5, Units: "deaths_per_year"},
		{State: "CO", StateFips: "08", CountyFips: "031", County: "Denver", Upgrade: client.CanonicalUpgrade, Metric: client.MetricNOx, Value: 150.8, Units: "tons_per_year"},
		{State: "CO", StateFips: "08", CountyFips: "031", County: "Denver", Upgrade: client.CanonicalUpgrade, Metric: client.MetricPM25, Value: 12.3, Units: "tons_per_year"},
		{State: "CO", StateFips: "08", CountyFips: "059", County: "Jefferson", Upgrade: client.CanonicalUpgrade, Metric: client.MetricMortality, Value: 1.8, Units: "deaths_per_year"},
		{State: "CO", StateFips: "08", CountyFips: "059", County: "Jefferson", Upgrade: client.CanonicalUpgrade, Metric: client.MetricNOx, Value: 98.5, Units: "tons_per_year"},
		{State: "CO", StateFips: "08", CountyFips: "059", County: "Jefferson", Upgrade: client.CanonicalUpgrade, Metric: client.MetricPM25, Value: 8.7, Units: "tons_per_year"},
	},
	"06": { // California
		{State: "CA", StateFips: "06", CountyFips: "037", County: "Los Angeles", Upgrade: client.CanonicalUpgrade, Metric: client.MetricMortality, Value: 15.4, Units: "deaths_per_year"},
		{State: "CA", StateFips: "06", CountyFips: "037", County: "Los Angeles", Upgrade: client.CanonicalUpgrade, Metric: client.MetricNOx, Value: 892.3, Units: "tons_per_year"},
		{State: "CA", StateFips: "06", CountyFips: "037", County: "Los Angeles", Upgrade: client.CanonicalUpgrade, Metric: client.MetricPM25, Value: 78.9, Units: "tons_per_year"},
	},
	"36": { // New York
		{State: "NY", StateFips: "36", CountyFips: "061", County: "New York", Upgrade: client.CanonicalUpgrade, Metric: client.MetricMortality, Value: 8.3, Units: "deaths_per_year"},
		{State: "NY", StateFips: "36", CountyFips: "061", County: "New York", Upgrade: client.CanonicalUpgrade, Metric: client.MetricNOx, Value: 456.7, Units: "tons_per_year"},
		{State: "NY", StateFips: "36", CountyFips: "061", County: "New York", Upgrade: client.CanonicalUpgrade, Metric: client.MetricPM25, Value: 42.1, Units: "tons_per_year"},
	},
	"53": { // Washington
		{State: "WA", StateFips: "53", CountyFips: "033", County: "King", Upgrade: client.CanonicalUpgrade, Metric: client.MetricMortality, Value: 4.6, Units: "deaths_per_year"},
		{State: "WA", StateFips: "53", CountyFips: "033", County: "King", Upgrade: client.CanonicalUpgrade, Metric: client.MetricNOx, Value: 211.4, Units: "tons_per_year"},
		{State: "WA", StateFips: "53", CountyFips: "033", County: "King", Upgrade: client.CanonicalUpgrade, Metric: client.MetricPM25, Value: 19.2, Units: "tons_per_year"},
	},
	"48": { // Texas
		{State: "TX", StateFips: "48", CountyFips: "201", County: "Harris", Upgrade: client.CanonicalUpgrade, Metric: client.MetricMortality, Value: 9.1, Units: "deaths_per_year"},
		{State: "TX", StateFips: "48", CountyFips: "201", County: "Harris", Upgrade: client.CanonicalUpgrade, Metric: client.MetricNOx, Value: 623.9, Units: "tons_per_year"},
		{State: "TX", StateFips: "48", CountyFips: "201", County: "Harris", Upgrade: client.CanonicalUpgrade, Metric: client.MetricPM25, Value: 55.0, Units: "tons_per_year"},
		{State: "TX", StateFips: "48", CountyFips: "113", County: "Dallas", Upgrade: client.CanonicalUpgrade, Metric: client.MetricMortality, Value: 6.4, Units: "deaths_per_year"},
		{State: "TX", StateFips: "48", CountyFips: "113", County: "Dallas", Upgrade: client.CanonicalUpgrade, Metric: client.MetricNOx, Value: 402.2, Units: "tons_per_year"},
	},
}
