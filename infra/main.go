package main

import (
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"

	"github.com/GregMSThompson/budget-planner/infra/cloudrun"
	"github.com/GregMSThompson/budget-planner/infra/docker"
	"github.com/GregMSThompson/budget-planner/infra/firestore"
	"github.com/GregMSThompson/budget-planner/infra/provider"
)

func main() {
	pulumi.Run(func(ctx *pulumi.Context) error {
		// set default provider with the correct project
		prov, err := provider.SetupDefaultProvider(ctx)
		if err != nil {
			return err
		}

		// enable firestore and create the native database
		db, err := firestore.SetupFirestore(ctx, prov)
		if err != nil {
			return err
		}

		// artifact registry for the api image
		repo, err := docker.CreateCloudrunRepo(ctx, prov)
		if err != nil {
			return err
		}

		url, err := cloudrun.SetupCloudRun(ctx, prov, db, repo)
		if err != nil {
			return err
		}

		ctx.Export("apiUrl", url)
		return nil
	})
}
