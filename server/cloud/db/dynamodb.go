// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package db

import (
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/guregu/dynamo"
)

type DynamoDBDatabase struct {
	svc              *dynamodb.DynamoDB
	db               *dynamo.DB
	generationsTable dynamo.Table
}

func NewDynamoDBDatabase(session *session.Session, stage string) (*DynamoDBDatabase, error) {
	ddb := &DynamoDBDatabase{svc: dynamodb.New(session)}
	ddb.db = dynamo.NewFromIface(ddb.svc)
	ddb.generationsTable = ddb.db.Table("terragen-" + stage + "-generations")
	return ddb, nil
}

// PutGeneration never overwrites an existing id.
func (ddb *DynamoDBDatabase) PutGeneration(generation Generation) error {
	err := ddb.generationsTable.Put(generation).If("attribute_not_exists(id)").Run()
	if err != nil {
		if _, ok := err.(*dynamodb.ConditionalCheckFailedException); ok {
			return nil
		}
	}
	return err
}

func (ddb *DynamoDBDatabase) ReadGeneration(id string) (generation Generation, err error) {
	err = ddb.generationsTable.Get("id", id).One(&generation)
	return
}

func (ddb *DynamoDBDatabase) ReadGenerations() (generations []Generation, err error) {
	query := ddb.generationsTable.Scan().Iter()

	for {
		var generation Generation
		ok := query.Next(&generation)
		if !ok {
			err = query.Err()
			return
		}
		generations = append(generations, generation)
	}
}

func (ddb *DynamoDBDatabase) ReadGenerationsBySeed(seed int64) (generations []Generation, err error) {
	query := ddb.generationsTable.Scan().Filter("seed = ?", seed).Iter()

	for {
		var generation Generation
		ok := query.Next(&generation)
		if !ok {
			err = query.Err()
			return
		}
		generations = append(generations, generation)
	}
}
