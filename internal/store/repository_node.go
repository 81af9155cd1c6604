package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-doc-vault/internal/logger"
	"github.com/MKhiriev/go-doc-vault/models"
)

// nodeRepository is the SQL-backed implementation of [NodeRepository].
// It executes all node reads and conditional writes against the "nodes"
// table and appends every successful write to "node_changes", the
// append-only log that backs the relay's watch endpoint.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so database interactions are traced with
// structured fields (path, version, change cursor).
type nodeRepository struct {
	*DB
	logger *logger.Logger
}

// NewNodeRepository constructs a [NodeRepository] backed by the provided
// database connection and logger.
func NewNodeRepository(db *DB, logger *logger.Logger) NodeRepository {
	logger.Debug().Msg("creating node repository")
	return &nodeRepository{
		DB:     db,
		logger: logger,
	}
}

// GetNode retrieves a single node by its exact path.
//
// Returns [ErrNotFound] when no row exists for the path.
func (r *nodeRepository) GetNode(ctx context.Context, path string) (models.Node, error) {
	log := logger.FromContext(ctx)

	var node models.Node
	err := r.DB.QueryRowContext(ctx, getNode, path).Scan(&node.Path, &node.Value, &node.Version, &node.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Node{}, ErrNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "nodeRepository.GetNode").
			Str("path", path).
			Msg("failed to scan node row")
		return models.Node{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return node, nil
}

// PutNode performs the conditional write that backs all optimistic
// concurrency in the system.
//
// The write runs in a transaction: the nodes row is created or bumped
// only if its current version matches expectedVersion, and the change
// log row is appended in the same commit so watchers never observe a
// write that is missing from the log.
//
// A transient failure (deadlock, serialization rollback, lock
// contention) is retried once as decided by the driver's
// [ErrorClassificator].
func (r *nodeRepository) PutNode(ctx context.Context, path string, value []byte, expectedVersion uint64) (models.Node, error) {
	log := logger.FromContext(ctx)

	node, err := r.putNodeOnce(ctx, path, value, expectedVersion)
	if err != nil && r.errorClassificator != nil && r.errorClassificator.Classify(err) == Retryable {
		log.Warn().
			Str("func", "nodeRepository.PutNode").
			Str("path", path).
			Err(err).
			Msg("transient database error, retrying conditional write")
		node, err = r.putNodeOnce(ctx, path, value, expectedVersion)
	}

	return node, err
}

func (r *nodeRepository) putNodeOnce(ctx context.Context, path string, value []byte, expectedVersion uint64) (models.Node, error) {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "nodeRepository.PutNode").
			Str("path", path).
			Msg("failed to begin transaction")
		return models.Node{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()

	if expectedVersion == 0 {
		// create-only write: an existing row means the caller lost the race
		if _, execErr := tx.ExecContext(ctx, createNode, path, value, now); execErr != nil {
			if isDuplicateKey(execErr) {
				log.Debug().
					Str("func", "nodeRepository.PutNode").
					Str("path", path).
					Msg("create-only write hit an existing node")
				return models.Node{}, ErrVersionConflict
			}

			log.Err(execErr).
				Str("func", "nodeRepository.PutNode").
				Str("path", path).
				Msg("failed to insert node")
			return models.Node{}, fmt.Errorf("%w: %w", ErrExecutingQuery, execErr)
		}
	} else {
		res, execErr := tx.ExecContext(ctx, updateNode, value, now, path, expectedVersion)
		if execErr != nil {
			log.Err(execErr).
				Str("func", "nodeRepository.PutNode").
				Str("path", path).
				Uint64("expected_version", expectedVersion).
				Msg("failed to update node")
			return models.Node{}, fmt.Errorf("%w: %w", ErrExecutingQuery, execErr)
		}

		affected, affErr := res.RowsAffected()
		if affErr != nil {
			return models.Node{}, fmt.Errorf("%w: %w", ErrExecutingQuery, affErr)
		}

		// missing row and stale version are the same outcome for the
		// caller: the expected state is gone
		if affected == 0 {
			log.Debug().
				Str("func", "nodeRepository.PutNode").
				Str("path", path).
				Uint64("expected_version", expectedVersion).
				Msg("optimistic lock failed: version mismatch")
			return models.Node{}, ErrVersionConflict
		}
	}

	newVersion := expectedVersion + 1
	if _, execErr := tx.ExecContext(ctx, appendNodeChange, path, value, newVersion, now); execErr != nil {
		log.Err(execErr).
			Str("func", "nodeRepository.PutNode").
			Str("path", path).
			Msg("failed to append node change")
		return models.Node{}, fmt.Errorf("%w: %w", ErrExecutingQuery, execErr)
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "nodeRepository.PutNode").
			Str("path", path).
			Msg("failed to commit transaction")
		return models.Node{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	return models.Node{
		Path:      path,
		Value:     value,
		Version:   newVersion,
		UpdatedAt: now,
	}, nil
}

// ListNodes returns every node whose path equals prefix or lives below
// it, ordered by path.
func (r *nodeRepository) ListNodes(ctx context.Context, prefix string) ([]models.Node, error) {
	log := logger.FromContext(ctx)

	rows, queryErr := r.DB.QueryContext(ctx, listNodes, prefix, prefix+"/%")
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "nodeRepository.ListNodes").
			Str("prefix", prefix).
			Msg("failed to execute query for listing nodes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	nodes := make([]models.Node, 0, 16)

	for rows.Next() {
		var node models.Node

		if scanErr := rows.Scan(&node.Path, &node.Value, &node.Version, &node.UpdatedAt); scanErr != nil {
			log.Err(scanErr).
				Str("func", "nodeRepository.ListNodes").
				Str("prefix", prefix).
				Msg("failed to scan node row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		nodes = append(nodes, node)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "nodeRepository.ListNodes").
			Str("prefix", prefix).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return nodes, nil
}

// ChangesAfter reads the change log forward from the given cursor,
// restricted to the watched path and its descendants.
//
// The returned cursor is the id of the last matching change, or the
// input cursor unchanged when nothing new matched.
func (r *nodeRepository) ChangesAfter(ctx context.Context, path string, after uint64) ([]models.Node, uint64, error) {
	log := logger.FromContext(ctx)

	rows, queryErr := r.DB.QueryContext(ctx, getNodeChangesAfter, after, path, path+"/%")
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "nodeRepository.ChangesAfter").
			Str("path", path).
			Uint64("after", after).
			Msg("failed to execute query for node changes")
		return nil, after, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	cursor := after
	nodes := make([]models.Node, 0, 8)

	for rows.Next() {
		var id uint64
		var node models.Node

		if scanErr := rows.Scan(&id, &node.Path, &node.Value, &node.Version, &node.UpdatedAt); scanErr != nil {
			log.Err(scanErr).
				Str("func", "nodeRepository.ChangesAfter").
				Str("path", path).
				Msg("failed to scan change row")
			return nil, after, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		cursor = id
		nodes = append(nodes, node)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "nodeRepository.ChangesAfter").
			Str("path", path).
			Msg("error occurred during rows iteration")
		return nil, after, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return nodes, cursor, nil
}
