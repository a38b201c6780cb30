package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/Kush-Singh-26/agora/builder/cache"
	"github.com/Kush-Singh-26/agora/builder/config"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect or clear the post hash cache",
}

var cacheStatsCmd = &cobra.Command{
	Use:   "stats <site>",
	Short: "Show cache statistics",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, hashes, err := openCache(args[0])
		if err != nil {
			return err
		}
		fmt.Println("📊 Cache Statistics")
		fmt.Println("════════════════════════════════════════")
		fmt.Printf("Backend:      %s\n", cfg.CacheBackend)
		fmt.Printf("Location:     %s\n", cfg.CachePath())
		fmt.Printf("Posts:        %d\n", len(hashes))
		if info, err := os.Stat(cfg.CachePath()); err == nil {
			fmt.Printf("Store Size:   %.2f KB\n", float64(info.Size())/1024)
		}
		return nil
	},
}

var cacheInspectCmd = &cobra.Command{
	Use:   "inspect <site> [post-path]",
	Short: "List cached post hashes, or the hash of one post",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, hashes, err := openCache(args[0])
		if err != nil {
			return err
		}
		if len(args) == 2 {
			hash, ok := hashes[args[1]]
			if !ok {
				return fmt.Errorf("no cache entry for '%s'", args[1])
			}
			fmt.Printf("%s  %s\n", hash, args[1])
			return nil
		}
		paths := make([]string, 0, len(hashes))
		for path := range hashes {
			paths = append(paths, path)
		}
		sort.Strings(paths)
		for _, path := range paths {
			fmt.Printf("%s  %s\n", hashes[path], path)
		}
		return nil
	},
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear <site>",
	Short: "Delete the cache so the next build renders every post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(afero.NewOsFs(), args[0])
		if err != nil {
			return err
		}
		if err := os.RemoveAll(cfg.CachePath()); err != nil {
			return fmt.Errorf("failed to clear cache: %w", err)
		}
		fmt.Println("🗑️  Cache cleared")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cacheCmd)
	cacheCmd.AddCommand(cacheStatsCmd, cacheInspectCmd, cacheClearCmd)
}

func openCache(siteDir string) (*config.Config, map[string]string, error) {
	fs := afero.NewOsFs()
	cfg, err := config.Load(fs, siteDir)
	if err != nil {
		return nil, nil, err
	}
	store, err := cache.OpenStore(fs, cfg.CacheBackend, cfg.CachePath())
	if err != nil {
		return nil, nil, err
	}
	hashes, err := store.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open cache: %w", err)
	}
	return cfg, hashes, nil
}
