// Package resultdb keeps benchmark reports in a SQLite database.
package resultdb

import (
	"database/sql"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/mattn/go-sqlite3"

	"github.com/e11jah/bst/internal/bench"
)

const driverName = "sqlite3_bstbench"

// Store represents a SQLite-backed collection of benchmark runs.
type Store struct {
	sdb *sql.DB
}

// Run is the stored summary of one benchmark run.
type Run struct {
	ID          int64
	Label       string
	Created     time.Time
	DatasetSize int
	Trials      int
	Nodes       int
	Leaves      int
	Height      int
	Averages    [4]time.Duration
}

// Open opens or creates a store with the given filename.
func Open(fname string) (*Store, error) {
	sdb, err := sql.Open(driverName, fname)
	if err != nil {
		return nil, errors.Wrap(err, "could not open result database")
	}
	store := &Store{sdb: sdb}
	if err := store.init(); err != nil {
		sdb.Close()
		return nil, err
	}
	return store, nil
}

func (st *Store) init() error {
	tx, err := st.sdb.Begin()
	if err != nil {
		return errors.Wrap(err, "could not initialize result database")
	}
	defer tx.Rollback()
	_, err = tx.Exec(`CREATE TABLE IF NOT EXISTS runs (
                id          INTEGER PRIMARY KEY,
                label       TEXT NOT NULL,
                ctime       INTEGER NOT NULL,
                datasize    INTEGER NOT NULL,
                trials      INTEGER NOT NULL,
                nodes       INTEGER NOT NULL,
                leaves      INTEGER NOT NULL,
                height      INTEGER NOT NULL,
                avginsiter  INTEGER NOT NULL,
                avginsrecur INTEGER NOT NULL,
                avgtrviter  INTEGER NOT NULL,
                avgtrvrecur INTEGER NOT NULL)`)
	if err != nil {
		return errors.Wrap(err, "could not create runs table")
	}
	_, err = tx.Exec(`CREATE TABLE IF NOT EXISTS trials (
                runid     INTEGER NOT NULL REFERENCES runs(id),
                idx       INTEGER NOT NULL,
                insiter   INTEGER NOT NULL,
                insrecur  INTEGER NOT NULL,
                trviter   INTEGER NOT NULL,
                trvrecur  INTEGER NOT NULL,
                itervisit INTEGER NOT NULL,
                recvisit  INTEGER NOT NULL,
                PRIMARY KEY (runid, idx))`)
	if err != nil {
		return errors.Wrap(err, "could not create trials table")
	}
	return errors.Wrap(tx.Commit(), "could not initialize result database")
}

// Close releases all non-garbage-collectible resources that the store holds.
func (st *Store) Close() error {
	return st.sdb.Close()
}

// SaveReport stores rep under label and returns the new run ID.
func (st *Store) SaveReport(label string, rep *bench.Report) (int64, error) {
	tx, err := st.sdb.Begin()
	if err != nil {
		return 0, errors.Wrap(err, "could not begin transaction")
	}
	defer tx.Rollback()

	res, err := tx.Exec(`INSERT INTO runs (label, ctime, datasize, trials, nodes, leaves, height,
                avginsiter, avginsrecur, avgtrviter, avgtrvrecur) VALUES (?,?,?,?,?,?,?,?,?,?,?)`,
		label, time.Now().Unix(), rep.DatasetSize, len(rep.Trials),
		rep.Nodes, rep.Leaves, rep.Height,
		int64(rep.Average(bench.InsertIterative)),
		int64(rep.Average(bench.InsertRecursive)),
		int64(rep.Average(bench.TraversalIterative)),
		int64(rep.Average(bench.TraversalRecursive)))
	if err != nil {
		return 0, errors.Wrap(err, "could not insert run")
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, errors.Wrap(err, "could not insert run")
	}

	stmt, err := tx.Prepare(`INSERT INTO trials VALUES (?,?,?,?,?,?,?,?)`)
	if err != nil {
		return 0, errors.Wrap(err, "could not prepare trial insert")
	}
	defer stmt.Close()
	for i, tr := range rep.Trials {
		_, err = stmt.Exec(runID, i,
			int64(tr.Duration(bench.InsertIterative)),
			int64(tr.Duration(bench.InsertRecursive)),
			int64(tr.Duration(bench.TraversalIterative)),
			int64(tr.Duration(bench.TraversalRecursive)),
			tr.IterativeVisits, tr.RecursiveVisits)
		if err != nil {
			return 0, errors.Wrapf(err, "could not insert trial %d", i)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, errors.Wrap(err, "could not commit run")
	}
	return runID, nil
}

// Runs lists stored runs, oldest first.
func (st *Store) Runs() ([]Run, error) {
	rows, err := st.sdb.Query(`SELECT id, label, ctime, datasize, trials, nodes, leaves, height,
                avginsiter, avginsrecur, avgtrviter, avgtrvrecur FROM runs ORDER BY id`)
	if err != nil {
		return nil, errors.Wrap(err, "could not query runs")
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var ctime int64
		var avg [4]int64
		err := rows.Scan(&run.ID, &run.Label, &ctime, &run.DatasetSize, &run.Trials,
			&run.Nodes, &run.Leaves, &run.Height, &avg[0], &avg[1], &avg[2], &avg[3])
		if err != nil {
			return nil, errors.Wrap(err, "could not scan run")
		}
		run.Created = time.Unix(ctime, 0)
		for i, ns := range avg {
			run.Averages[i] = time.Duration(ns)
		}
		runs = append(runs, run)
	}
	return runs, errors.Wrap(rows.Err(), "could not query runs")
}

// Trials returns the trials of a run in order.
func (st *Store) Trials(runID int64) ([]bench.Trial, error) {
	rows, err := st.sdb.Query(`SELECT insiter, insrecur, trviter, trvrecur, itervisit, recvisit
                FROM trials WHERE runid = ? ORDER BY idx`, runID)
	if err != nil {
		return nil, errors.Wrap(err, "could not query trials")
	}
	defer rows.Close()

	var trials []bench.Trial
	for rows.Next() {
		var tr bench.Trial
		var ns [4]int64
		err := rows.Scan(&ns[0], &ns[1], &ns[2], &ns[3], &tr.IterativeVisits, &tr.RecursiveVisits)
		if err != nil {
			return nil, errors.Wrap(err, "could not scan trial")
		}
		for i, a := range bench.Actions() {
			tr.Durations[a] = time.Duration(ns[i])
		}
		trials = append(trials, tr)
	}
	return trials, errors.Wrap(rows.Err(), "could not query trials")
}

// SQLite3 with foreign keys
func init() {
	sql.Register(driverName,
		&sqlite3.SQLiteDriver{
			ConnectHook: func(conn *sqlite3.SQLiteConn) error {
				_, err := conn.Exec("PRAGMA foreign_keys = ON", nil)
				return err
			},
		})
}
