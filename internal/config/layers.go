package config

import "os"

// LoadLayered stacks the user options, the file at localPath and overrides,
// later layers winning. A missing local file is skipped.
func LoadLayered(svc ConfigService, localPath string, overrides Options) (Options, error) {
	user, err := svc.Load()
	if err != nil {
		return Options{}, err
	}
	opts := *user

	if localPath != "" {
		if _, err := os.Stat(localPath); err == nil {
			local, err := svc.LoadFromPath(localPath)
			if err != nil {
				return Options{}, err
			}
			opts = Merge(opts, *local)
		}
	}

	return Merge(opts, overrides), nil
}
