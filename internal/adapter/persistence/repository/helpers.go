package repository

import (
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// sortKey zero-pads n so lexical order matches numeric order.
func sortKey(n uint64) string {
	return fmt.Sprintf("%020d", n)
}

func hasConditionalCheckFailure(tce *types.TransactionCanceledException) bool {
	for _, reason := range tce.CancellationReasons {
		if aws.ToString(reason.Code) == "ConditionalCheckFailed" {
			return true
		}
	}
	return false
}
