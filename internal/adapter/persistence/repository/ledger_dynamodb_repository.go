package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"carbody_insurance/internal/domain/entities"
	"carbody_insurance/internal/ledger"
	"carbody_insurance/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/ethereum/go-ethereum/common"
)

const (
	defaultLedgerTableName = "carbody-ledger"
	maxTransactItems       = 100

	pkMeta     = "LEDGER"
	skMeta     = "META"
	pkPolicy   = "POLICY"
	pkClaim    = "CLAIM"
	pkTokens   = "TOKENS"
	pkTransfer = "TRANSFER"
	pkEvent    = "EVENT"
)

// dynamoAPI is the subset of *dynamodb.Client the ledger repository uses.
type dynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

type metaItem struct {
	PK          string `dynamodbav:"pk"`
	SK          string `dynamodbav:"sk"`
	PolicyCount uint64 `dynamodbav:"policy_count"`
	ClaimCount  uint64 `dynamodbav:"claim_count"`
	Sequence    uint64 `dynamodbav:"sequence"`
	Custody     uint64 `dynamodbav:"custody"`
}

type policyItem struct {
	PK       string               `dynamodbav:"pk"`
	SK       string               `dynamodbav:"sk"`
	ID       uint64               `dynamodbav:"id"`
	Holder   string               `dynamodbav:"holder"`
	IsActive bool                 `dynamodbav:"is_active"`
	Details  entities.PolicyInput `dynamodbav:"details"`
}

type claimItem struct {
	PK         string `dynamodbav:"pk"`
	SK         string `dynamodbav:"sk"`
	ID         uint64 `dynamodbav:"id"`
	PolicyID   uint64 `dynamodbav:"policy_id"`
	Amount     uint64 `dynamodbav:"amount"`
	IsApproved bool   `dynamodbav:"is_approved"`
}

type tokenItem struct {
	PK      string `dynamodbav:"pk"`
	SK      string `dynamodbav:"sk"`
	Balance uint64 `dynamodbav:"balance"`
}

type transferItem struct {
	PK       string `dynamodbav:"pk"`
	SK       string `dynamodbav:"sk"`
	ID       string `dynamodbav:"id"`
	ClaimID  uint64 `dynamodbav:"claim_id"`
	To       string `dynamodbav:"to"`
	Amount   uint64 `dynamodbav:"amount"`
	Sequence uint64 `dynamodbav:"sequence"`
}

type eventItem struct {
	PK      string `dynamodbav:"pk"`
	SK      string `dynamodbav:"sk"`
	ID      string `dynamodbav:"id"`
	Kind    string `dynamodbav:"kind"`
	Payload string `dynamodbav:"payload"`
}

// LedgerDynamoRepository persists the ledger in a single DynamoDB table.
//
// Table requirements:
//   - PK: pk (string), SK: sk (string)
//
// Each record type lives in its own partition (POLICY, CLAIM, TOKENS,
// TRANSFER, EVENT) with zero-padded numeric sort keys so queries return ids
// in order. The LEDGER/META item carries the counters and the sequence every
// commit is conditioned on.

type LedgerDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.ILedgerRepository = (*LedgerDynamoRepository)(nil)

func NewLedgerDynamoRepository(ddb *dynamodb.Client) *LedgerDynamoRepository {
	return newLedgerDynamoRepository(ddb, getenvDefault("LEDGER_TABLE", defaultLedgerTableName))
}

func newLedgerDynamoRepository(ddb dynamoAPI, tableName string) *LedgerDynamoRepository {
	return &LedgerDynamoRepository{ddb: ddb, tableName: tableName}
}

// Commit writes the change set in one TransactWriteItems call. The meta put is
// conditioned on the stored sequence, so a change set staged against an older
// ledger is rejected with ledger.ErrStaleChangeSet.
func (r *LedgerDynamoRepository) Commit(ctx context.Context, cs ledger.ChangeSet) error {
	items, err := r.transactItems(cs)
	if err != nil {
		return err
	}
	if len(items) > maxTransactItems {
		return fmt.Errorf("change set too large: %d items", len(items))
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) && hasConditionalCheckFailure(tce) {
			return fmt.Errorf("%w: %v", ledger.ErrStaleChangeSet, err)
		}
		return err
	}
	return nil
}

func (r *LedgerDynamoRepository) Load(ctx context.Context) (ledger.Snapshot, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"pk": &types.AttributeValueMemberS{Value: pkMeta},
			"sk": &types.AttributeValueMemberS{Value: skMeta},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return ledger.Snapshot{}, err
	}
	if len(out.Item) == 0 {
		return ledger.Snapshot{}, nil
	}

	var meta metaItem
	if err := attributevalue.UnmarshalMap(out.Item, &meta); err != nil {
		return ledger.Snapshot{}, err
	}
	snap := ledger.Snapshot{
		PolicyCount: meta.PolicyCount,
		ClaimCount:  meta.ClaimCount,
		Sequence:    meta.Sequence,
		Custody:     meta.Custody,
	}

	var policies []policyItem
	if err := r.queryPartition(ctx, pkPolicy, &policies); err != nil {
		return ledger.Snapshot{}, err
	}
	for _, it := range policies {
		snap.Policies = append(snap.Policies, fromPolicyItem(it))
	}

	var claims []claimItem
	if err := r.queryPartition(ctx, pkClaim, &claims); err != nil {
		return ledger.Snapshot{}, err
	}
	for _, it := range claims {
		snap.Claims = append(snap.Claims, entities.Claim{ID: it.ID, PolicyID: it.PolicyID, Amount: it.Amount, IsApproved: it.IsApproved})
	}

	var tokens []tokenItem
	if err := r.queryPartition(ctx, pkTokens, &tokens); err != nil {
		return ledger.Snapshot{}, err
	}
	for _, it := range tokens {
		snap.Tokens = append(snap.Tokens, ledger.TokenBalance{Holder: common.HexToAddress(it.SK), Balance: it.Balance})
	}

	var transfers []transferItem
	if err := r.queryPartition(ctx, pkTransfer, &transfers); err != nil {
		return ledger.Snapshot{}, err
	}
	for _, it := range transfers {
		snap.Transfers = append(snap.Transfers, entities.Transfer{
			ID:       it.ID,
			ClaimID:  it.ClaimID,
			To:       common.HexToAddress(it.To),
			Amount:   it.Amount,
			Sequence: it.Sequence,
		})
	}
	return snap, nil
}

func (r *LedgerDynamoRepository) queryPartition(ctx context.Context, pk string, out any) error {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:                aws.String(r.tableName),
		KeyConditionExpression:   aws.String("#pk = :pk"),
		ExpressionAttributeNames: map[string]string{"#pk": "pk"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: pk},
		},
		ConsistentRead: aws.Bool(true),
	})

	var raw []map[string]types.AttributeValue
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return err
		}
		raw = append(raw, page.Items...)
	}
	return attributevalue.UnmarshalListOfMaps(raw, out)
}

func (r *LedgerDynamoRepository) transactItems(cs ledger.ChangeSet) ([]types.TransactWriteItem, error) {
	meta, err := attributevalue.MarshalMap(metaItem{
		PK:          pkMeta,
		SK:          skMeta,
		PolicyCount: cs.PolicyCount,
		ClaimCount:  cs.ClaimCount,
		Sequence:    cs.Sequence,
		Custody:     cs.Custody,
	})
	if err != nil {
		return nil, err
	}

	cond := "#seq = :prev"
	if cs.PrevSequence == 0 {
		cond = "attribute_not_exists(#pk) OR #seq = :prev"
	}
	items := []types.TransactWriteItem{{
		Put: &types.Put{
			TableName:           aws.String(r.tableName),
			Item:                meta,
			ConditionExpression: aws.String(cond),
			ExpressionAttributeNames: map[string]string{
				"#pk":  "pk",
				"#seq": "sequence",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":prev": &types.AttributeValueMemberN{Value: strconv.FormatUint(cs.PrevSequence, 10)},
			},
		},
	}}

	var records []any
	for _, p := range cs.Policies {
		records = append(records, toPolicyItem(p))
	}
	for _, c := range cs.Claims {
		records = append(records, claimItem{
			PK: pkClaim, SK: sortKey(c.ID),
			ID: c.ID, PolicyID: c.PolicyID, Amount: c.Amount, IsApproved: c.IsApproved,
		})
	}
	for _, tb := range cs.Tokens {
		records = append(records, tokenItem{PK: pkTokens, SK: tb.Holder.Hex(), Balance: tb.Balance})
	}
	for _, t := range cs.Transfers {
		records = append(records, transferItem{
			PK: pkTransfer, SK: sortKey(t.Sequence) + "#" + t.ID,
			ID: t.ID, ClaimID: t.ClaimID, To: t.To.Hex(), Amount: t.Amount, Sequence: t.Sequence,
		})
	}
	for _, e := range cs.Events {
		payload, err := json.Marshal(e)
		if err != nil {
			return nil, err
		}
		records = append(records, eventItem{PK: pkEvent, SK: sortKey(e.Sequence), ID: e.ID, Kind: string(e.Kind), Payload: string(payload)})
	}

	for _, rec := range records {
		av, err := attributevalue.MarshalMap(rec)
		if err != nil {
			return nil, err
		}
		items = append(items, types.TransactWriteItem{
			Put: &types.Put{TableName: aws.String(r.tableName), Item: av},
		})
	}
	return items, nil
}

func toPolicyItem(p entities.Policy) policyItem {
	return policyItem{
		PK:       pkPolicy,
		SK:       sortKey(p.ID),
		ID:       p.ID,
		Holder:   p.Holder.Hex(),
		IsActive: p.IsActive,
		Details:  p.PolicyInput,
	}
}

func fromPolicyItem(it policyItem) entities.Policy {
	return entities.Policy{
		ID:          it.ID,
		Holder:      common.HexToAddress(it.Holder),
		PolicyInput: it.Details,
		IsActive:    it.IsActive,
	}
}
