package monitor

// Store holds the records for all monitored hosts in display order. The set
// of hosts is fixed at startup, so the slice and map are never mutated after
// construction and need no locking of their own; per-record consistency is
// the record's job.
type Store struct {
	records []*HostRecord
	byAddr  map[string]*HostRecord
}

// NewStore builds a store from records, preserving their order.
func NewStore(records []*HostRecord) *Store {
	byAddr := make(map[string]*HostRecord, len(records))
	for _, r := range records {
		byAddr[r.Address()] = r
	}
	return &Store{records: records, byAddr: byAddr}
}

// Records returns the records in display order.
func (s *Store) Records() []*HostRecord {
	return s.records
}

// Get returns the record for an address, or nil when unknown.
func (s *Store) Get(address string) *HostRecord {
	return s.byAddr[address]
}

// Len returns the number of monitored hosts.
func (s *Store) Len() int {
	return len(s.records)
}

// Snapshot captures a consistent view of every record, in display order.
// Each record is snapshotted independently; rows are internally consistent
// even while probers keep writing.
func (s *Store) Snapshot() []RecordView {
	views := make([]RecordView, len(s.records))
	for i, r := range s.records {
		views[i] = r.Snapshot()
	}
	return views
}
