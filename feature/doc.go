// Package feature defines the data model for 2D feature maps used by this
// module. It includes:
//   - Position, Range and Feature types for positioned elements
//   - ConsensusFeature and ConsensusMap for merged/consensus elements
//   - SQLiteStore: durable storage for named feature maps
//   - Schema helpers to create the feature tables
package feature
