package wordchipper

// Generate documentation for the root package.
//go:generate gomarkdoc -o README.md -e . --embed --repository.url https://github.com/agentstation/wordchipper --repository.default-branch master --repository.path /

// Generate documentation for the vocab package.
//go:generate gomarkdoc -o ./vocab/README.md -e ./vocab --embed --repository.url https://github.com/agentstation/wordchipper --repository.default-branch master --repository.path /vocab

// Generate documentation for the encoders package.
//go:generate gomarkdoc -o ./encoders/README.md -e ./encoders --embed --repository.url https://github.com/agentstation/wordchipper --repository.default-branch master --repository.path /encoders

// Generate documentation for the CLI package.
//go:generate gomarkdoc -o ./cmd/wordchipper/README.md -e ./cmd/wordchipper --embed --repository.url https://github.com/agentstation/wordchipper --repository.default-branch master --repository.path /cmd/wordchipper
