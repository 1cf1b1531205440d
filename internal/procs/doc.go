// Package procs acquires bounded snapshots of the host process table.
//
// A Lister opens a stream of process rows already ordered by descending CPU
// usage. PSLister runs ps(1); GopsutilLister walks the process table through
// gopsutil. Provider drains one stream per Snapshot call, skips rows that do
// not parse and stops at MaxProcesses.
package procs
