// Package s3sink validates S3 sink connector configurations.
//
// The package provides two collaborating pieces: a pure compatibility rule
// engine that checks whether a resolved connector configuration is
// internally consistent (format selections versus output compression, with
// key and header persistence taken into account), and a bucket checker that
// verifies the destination S3 bucket exists. Both report violations as
// per-field message collections rather than a single pass/fail verdict, so
// a host can surface every problem at once.
//
// Typical use:
//
//	client, err := s3sink.New(s3sink.WithRegion("us-west-2"))
//	if err != nil {
//	    return err
//	}
//
//	cfg, err := sinkconfig.ParseConfig(props)
//	if err != nil {
//	    return err
//	}
//
//	outcome, err := s3sink.NewValidator(client).Validate(ctx, cfg)
//	if err != nil {
//	    return err // storage access failure, not a configuration problem
//	}
//	for key, messages := range outcome {
//	    ...
//	}
package s3sink
