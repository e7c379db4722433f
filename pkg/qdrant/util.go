package qdrant

import (
	"fmt"

	pb "github.com/qdrant/go-client/qdrant"
)

// Validate validates the Qdrant configuration.
func (cfg QdrantConfig) Validate() error {
	if cfg.Host == "" {
		return fmt.Errorf("%w: host is required", ErrInvalidConfig)
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return fmt.Errorf("%w: invalid port number", ErrInvalidConfig)
	}
	return nil
}

// GetDistanceMetric returns the appropriate distance metric.
func GetDistanceMetric(metric string) pb.Distance {
	switch metric {
	case DistanceCosine:
		return pb.Distance_Cosine
	case DistanceEuclidean:
		return pb.Distance_Euclid
	case DistanceDot:
		return pb.Distance_Dot
	case DistanceManhattan:
		return pb.Distance_Manhattan
	default:
		return pb.Distance_Cosine
	}
}

// ValidateVector checks if a vector is valid.
func ValidateVector(vector []float32, expectedSize uint64) error {
	if len(vector) == 0 {
		return ErrInvalidVector
	}
	if uint64(len(vector)) != expectedSize {
		return fmt.Errorf("%w: expected size %d, got %d", ErrInvalidVector, expectedSize, len(vector))
	}
	return nil
}

// valueToInterface converts a Qdrant payload value to a plain Go value.
func valueToInterface(value *pb.Value) interface{} {
	if value == nil {
		return nil
	}
	switch kind := value.Kind.(type) {
	case *pb.Value_NullValue:
		return nil
	case *pb.Value_BoolValue:
		return kind.BoolValue
	case *pb.Value_IntegerValue:
		return kind.IntegerValue
	case *pb.Value_DoubleValue:
		return kind.DoubleValue
	case *pb.Value_StringValue:
		return kind.StringValue
	case *pb.Value_ListValue:
		items := make([]interface{}, 0, len(kind.ListValue.Values))
		for _, item := range kind.ListValue.Values {
			items = append(items, valueToInterface(item))
		}
		return items
	case *pb.Value_StructValue:
		fields := make(map[string]interface{}, len(kind.StructValue.Fields))
		for key, field := range kind.StructValue.Fields {
			fields[key] = valueToInterface(field)
		}
		return fields
	default:
		return nil
	}
}
