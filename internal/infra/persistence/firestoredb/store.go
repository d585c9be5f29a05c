// Package firestoredb contains the concrete implementation of the persistence layer on Cloud Firestore.
package firestoredb

import (
	"context"

	"tripbook/internal/errors"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// maxInValues is the Firestore limit on values in a single "in" filter.
const maxInValues = 30

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

func isAlreadyExists(err error) bool {
	return status.Code(err) == codes.AlreadyExists
}

// updateInTx loads the document, hands the mapped entity to fn and writes the
// result back, all inside one Firestore transaction. fn errors abort the write
// and are returned unchanged.
func updateInTx[M any, E any](
	ctx context.Context,
	client *firestore.Client,
	ref *firestore.DocumentRef,
	notFound error,
	toDomain func(id string, m *M) *E,
	fromDomain func(e *E) *M,
	fn func(*E) error,
) (*E, error) {
	var updated *E

	err := client.RunTransaction(ctx, func(_ context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil {
			if isNotFound(err) {
				return notFound
			}

			return errors.Wrap(err, "failed to read document")
		}

		var m M
		if err := snap.DataTo(&m); err != nil {
			return errors.Wrap(err, "failed to decode document")
		}

		current := toDomain(ref.ID, &m)
		if err := fn(current); err != nil {
			return err
		}

		if err := tx.Set(ref, fromDomain(current)); err != nil {
			return errors.Wrap(err, "failed to write document")
		}
		updated = current

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// decodeAll maps every snapshot of a query result to a domain entity.
func decodeAll[M any, E any](snaps []*firestore.DocumentSnapshot, toDomain func(id string, m *M) *E) ([]*E, error) {
	out := make([]*E, 0, len(snaps))
	for _, snap := range snaps {
		var m M
		if err := snap.DataTo(&m); err != nil {
			return nil, errors.Wrapf(err, "failed to decode document %s", snap.Ref.ID)
		}
		out = append(out, toDomain(snap.Ref.ID, &m))
	}

	return out, nil
}

// chunk splits values into slices no longer than size.
func chunk(values []string, size int) [][]string {
	var out [][]string
	for start := 0; start < len(values); start += size {
		end := min(start+size, len(values))
		out = append(out, values[start:end])
	}

	return out
}
